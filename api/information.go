package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"

	"github.com/community-aid/helpboard-api/store"
)

// myInformation returns the caller's profile information. A 404 here is
// not a failure contract: it means the profile has not been filled in yet
// and the client offers a create flow instead of an edit flow.
func (s *Server) myInformation(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	info, err := s.store.GetInformation(user.ID)
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			abortWithEncoding(c, http.StatusNotFound, errorInformationNotFound)
			return
		}
		shouldInterupt(err, c)
		return
	}

	c.JSON(http.StatusOK, info)
}

// informationByUser returns another user's profile information.
func (s *Server) informationByUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	info, err := s.store.GetInformation(userID)
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			abortWithEncoding(c, http.StatusNotFound, errorInformationNotFound)
			return
		}
		shouldInterupt(err, c)
		return
	}

	c.JSON(http.StatusOK, info)
}

type informationParams struct {
	Age  int    `json:"age"`
	Name string `json:"name"`
}

// createInformation saves the caller's profile for the first time.
func (s *Server) createInformation(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	var params informationParams
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	info, err := s.store.CreateInformation(user.ID, params.Name, params.Age)
	if err != nil {
		switch err {
		case store.ErrInformationExists:
			abortWithEncoding(c, http.StatusBadRequest, errorInformationExists, err)
		case store.ErrAgeOutOfRange:
			abortWithEncoding(c, http.StatusBadRequest, errorAgeOutOfRange, err)
		case store.ErrNameRequired:
			abortWithEncoding(c, http.StatusBadRequest, errorNameRequired, err)
		default:
			shouldInterupt(err, c)
		}
		return
	}

	c.JSON(http.StatusOK, info)
}

// updateInformation replaces the editable fields of the caller's profile.
func (s *Server) updateInformation(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	var params informationParams
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	info, err := s.store.UpdateInformation(user.ID, params.Name, params.Age)
	if err != nil {
		switch {
		case gorm.IsRecordNotFoundError(err):
			abortWithEncoding(c, http.StatusNotFound, errorInformationNotFound)
		case err == store.ErrAgeOutOfRange:
			abortWithEncoding(c, http.StatusBadRequest, errorAgeOutOfRange, err)
		case err == store.ErrNameRequired:
			abortWithEncoding(c, http.StatusBadRequest, errorNameRequired, err)
		default:
			shouldInterupt(err, c)
		}
		return
	}

	c.JSON(http.StatusOK, info)
}
