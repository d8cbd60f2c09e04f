// Package httputil provides helpers for request binding and the shared
// HTTP error shape.
package httputil

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

// RequestHost returns the scheme and host the request was made against.
// The scheme defaults to http and only switches to https if the
// x-forwarded-proto header says so.
func RequestHost(c *gin.Context) string {
	scheme := "http"
	if c.Request.Header.Get("x-forwarded-proto") == "https" {
		scheme = "https"
	}

	// We can reasonably expect a reverse proxy to set x-forwarded-host
	// as it is a de-facto standard.
	//
	// If it is set, we use it to construct the links and use the
	// x-forwarded-prefix header as prefix. If that is unset,
	// fall back to "/api"
	//
	// If no proxy is detected, don’t do anything.
	host := c.Request.Host
	var forwardedPrefix string

	xForwardedHost := c.Request.Header.Get("x-forwarded-host")
	if xForwardedHost != "" {
		host = xForwardedHost

		forwardedPrefix = c.Request.Header.Get("x-forwarded-prefix")

		if forwardedPrefix == "" {
			forwardedPrefix = "/api"
		}
	}

	return scheme + "://" + host + forwardedPrefix
}

// HTTPError is used for error responses that contain a body.
type HTTPError struct {
	Error string `json:"error" example:"the body of your request contains invalid or un-parseable data"`
}

var (
	ErrRequestBodyEmpty   = errors.New("the request body must not be empty")
	ErrInvalidBody        = errors.New("the body of your request contains invalid or un-parseable data")
	ErrInvalidQueryString = errors.New("the query string contains unparseable data. Please check the parameters")
)

// NewError writes an error response with a body.
func NewError(c *gin.Context, status int, err error) {
	c.JSON(status, HTTPError{
		Error: err.Error(),
	})
}

// BindData binds the JSON body of the request to the struct passed in.
// Binding problems are translated into user-readable errors and written
// to the response; the caller only has to return on a non-nil error.
func BindData(c *gin.Context, data any) error {
	err := c.ShouldBindJSON(data)
	if err == nil {
		return nil
	}

	if errors.Is(err, io.EOF) {
		NewError(c, http.StatusBadRequest, ErrRequestBodyEmpty)
		return ErrRequestBodyEmpty
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fields := make([]string, 0, len(validationErrors))
		for _, fieldError := range validationErrors {
			fields = append(fields, fieldError.Field())
		}

		e := fmt.Errorf("invalid or missing fields: %s", strings.Join(fields, ", "))
		NewError(c, http.StatusBadRequest, e)
		return e
	}

	log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
	NewError(c, http.StatusBadRequest, ErrInvalidBody)
	return ErrInvalidBody
}
