package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avolkovs/pinpoint/internal/common"
)

type registerRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Name     *string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (a *api) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		a.abortWithError(c, common.ErrorValidation)
		return
	}

	account, token, err := a.svc.Accounts.Register(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		a.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":          account.ID,
		"email":       account.Email,
		"accessToken": token,
	})
}

// currentAccount returns the profile of the authenticated caller.
func (a *api) currentAccount(c *gin.Context) {
	account, err := a.svc.Accounts.Get(c.Request.Context(), accountID(c))
	if err != nil {
		a.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

func (a *api) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		a.abortWithError(c, common.ErrorValidation)
		return
	}

	token, err := a.svc.Accounts.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		a.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"accessToken": token})
}
