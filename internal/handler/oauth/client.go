// File: internal/handler/oauth/client.go
package oauth

import (
	"net/http"

	"hub-oauth/internal/database"
	"hub-oauth/internal/dto"
	"hub-oauth/internal/model"
	"hub-oauth/internal/store"

	"github.com/labstack/echo/v4"
)

// Overridable in tests.
var (
	addOAuthClient    = store.AddOAuthClient
	listOAuthClients  = store.ListOAuthClients
	deleteOAuthClient = store.DeleteOAuthClient
)

func clientResponse(c *model.OAuthClient) dto.ClientResponse {
	return dto.ClientResponse{
		ClientID:    c.ClientID,
		RedirectURI: c.RedirectURI,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// RegisterClientHandler registers (or replaces) an OAuth client.
// @Summary     Register an OAuth client
// @Description Register-or-replace: a prior registration with the same client_id is fully replaced. The secret is hashed before storage and never returned.
// @Tags        oauth
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       client_id     formData string true "Client identifier"
// @Param       client_secret formData string true "Client secret (plaintext, stored hashed)"
// @Param       redirect_uri  formData string true "Redirect URI"
// @Success     201 {object} dto.ClientResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /oauth/clients [post]
func RegisterClientHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.CreateClientRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		client, err := addOAuthClient(c.Request().Context(), db, req.ClientID, req.ClientSecret, req.RedirectURI)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to register client"})
		}
		return c.JSON(http.StatusCreated, clientResponse(client))
	}
}

// ListClientsHandler lists registered OAuth clients.
// @Summary     List OAuth clients
// @Tags        oauth
// @Produce     json
// @Success     200 {array} dto.ClientResponse
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /oauth/clients [get]
func ListClientsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		clients, err := listOAuthClients(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to list clients"})
		}
		resp := make([]dto.ClientResponse, 0, len(clients))
		for i := range clients {
			resp = append(resp, clientResponse(&clients[i]))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// DeleteClientHandler removes a client registration.
// @Summary     Delete an OAuth client
// @Tags        oauth
// @Param       client_id path string true "Client identifier"
// @Success     204 "No Content"
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /oauth/clients/{client_id} [delete]
func DeleteClientHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := deleteOAuthClient(c.Request().Context(), db, c.Param("client_id")); err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to delete client"})
		}
		return c.NoContent(http.StatusNoContent)
	}
}
