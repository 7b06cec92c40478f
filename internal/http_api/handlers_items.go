package http_api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/core-coin/tokenforge/internal/models"
)

// ItemRequest is the JSON body of the item form.
type ItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ItemFormResponse is returned by the item form submit.
type ItemFormResponse struct {
	Item models.Item `json:"item"`
	// Stored is false when the edited item had been removed and nothing changed.
	Stored bool `json:"stored"`
}

// AboutResponse is the body of the about page.
type AboutResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "invalid item id")
		return 0, false
	}
	return id, true
}

// itemsPage renders the item list together with the form prefill.
func (s *HTTPServer) itemsPage(c *gin.Context) {
	c.JSON(http.StatusOK, s.forge.ItemsView())
}

func (s *HTTPServer) aboutPage(c *gin.Context) {
	c.JSON(http.StatusOK, AboutResponse{
		Name:        "tokenforge",
		Description: "Manage a list of items and create tokens through a connected wallet.",
	})
}

func (s *HTTPServer) listItems(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": s.forge.ListItems()})
}

func (s *HTTPServer) addItem(c *gin.Context) {
	var req ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}
	c.JSON(http.StatusCreated, s.forge.AddItem(req.Name, req.Description))
}

// updateItem merges the supplied fields. Unknown ids are a no-op.
func (s *HTTPServer) updateItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var patch models.ItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}
	s.forge.UpdateItem(id, patch)
	c.Status(http.StatusNoContent)
}

func (s *HTTPServer) deleteItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	s.forge.RemoveItem(id)
	c.Status(http.StatusNoContent)
}

func (s *HTTPServer) submitItemForm(c *gin.Context) {
	var req ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}
	item, stored := s.forge.SubmitItem(req.Name, req.Description)
	c.JSON(http.StatusOK, ItemFormResponse{Item: item, Stored: stored})
}

func (s *HTTPServer) editItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	item, err := s.forge.EditItem(id)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (s *HTTPServer) cancelEdit(c *gin.Context) {
	s.forge.CancelEdit()
	c.Status(http.StatusNoContent)
}
