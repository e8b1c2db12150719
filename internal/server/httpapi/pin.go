package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avolkovs/pinpoint/internal/common"
	"github.com/avolkovs/pinpoint/internal/server/models"
)

type createPinRequest struct {
	Message string  `json:"message"`
	Image   *string `json:"image"`
	Color   *string `json:"color"`
}

type deletePinRequest struct {
	ID int64 `json:"id"`
}

func (a *api) listPins(c *gin.Context) {
	pins, err := a.svc.Pins.ListOwn(c.Request.Context(), accountID(c))
	if err != nil {
		a.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, pins)
}

func (a *api) getPin(c *gin.Context) {
	id, ok := a.pathID(c, "id")
	if !ok {
		return
	}
	pin, err := a.svc.Pins.Get(c.Request.Context(), id)
	if err != nil {
		a.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, pin)
}

func (a *api) createPin(c *gin.Context) {
	var req createPinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		a.abortWithError(c, common.ErrorValidation)
		return
	}
	pin, err := a.svc.Pins.Create(c.Request.Context(), accountID(c), req.Message, req.Image, req.Color)
	if err != nil {
		a.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, pin)
}

func (a *api) updatePin(c *gin.Context) {
	id, ok := a.pathID(c, "id")
	if !ok {
		return
	}
	var patch models.PinPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		a.abortWithError(c, common.ErrorValidation)
		return
	}
	pin, err := a.svc.Pins.Update(c.Request.Context(), accountID(c), id, &patch)
	if err != nil {
		a.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, pin)
}

func (a *api) deletePin(c *gin.Context) {
	id, ok := a.pathID(c, "id")
	if !ok {
		return
	}
	if err := a.svc.Pins.Delete(c.Request.Context(), accountID(c), id); err != nil {
		a.abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// deletePinLegacy serves the old frontend's delete shape where the pin id
// travels in a PUT body instead of the path.
func (a *api) deletePinLegacy(c *gin.Context) {
	var req deletePinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		a.abortWithError(c, common.ErrorValidation)
		return
	}
	if err := a.svc.Pins.Delete(c.Request.Context(), accountID(c), req.ID); err != nil {
		a.abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (a *api) getLikes(c *gin.Context) {
	id, ok := a.pathID(c, "id")
	if !ok {
		return
	}
	likes, err := a.svc.Pins.GetLikes(c.Request.Context(), id)
	if err != nil {
		a.abortWithError(c, err)
		return
	}
	// the count travels as a bare JSON number
	c.JSON(http.StatusOK, likes)
}

func (a *api) like(c *gin.Context) {
	id, ok := a.pathID(c, "id")
	if !ok {
		return
	}
	if _, err := a.svc.Pins.Like(c.Request.Context(), id); err != nil {
		a.abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (a *api) unlike(c *gin.Context) {
	id, ok := a.pathID(c, "id")
	if !ok {
		return
	}
	if _, err := a.svc.Pins.Unlike(c.Request.Context(), id); err != nil {
		a.abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
