package handlers

import (
	"errors"
	"io/fs"
	"net/http"
	"os"

	"anatomy-explorer-backend/internal/middleware"
	"anatomy-explorer-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ModelStorageHandler struct {
	store *services.AssetStore
}

func NewModelStorageHandler(store *services.AssetStore) *ModelStorageHandler {
	return &ModelStorageHandler{store: store}
}

// Upload godoc
// @Summary      Upload a model file
// @Description  The raw request body is stored under the given name, truncated at 75 MiB
// @Tags         modelstorage
// @Accept       application/octet-stream
// @Produce      json
// @Param        filename path string true "File name"
// @Param        category query string false "Model category"
// @Success      200 {integer} integer "bytes written"
// @Failure      400 {object} ErrorResponse
// @Router       /modelstorage/upload/{filename} [put]
func (h *ModelStorageHandler) Upload(c *gin.Context) {
	var category *string
	if v, ok := c.GetQuery("category"); ok {
		category = &v
	}

	n, err := h.store.Upload(c.Param("filename"), c.Request.Body, category)
	h.written(c, "model", n, err)
}

// UploadMaterial godoc
// @Summary      Upload a model's material file
// @Tags         modelstorage
// @Accept       application/octet-stream
// @Produce      json
// @Param        id path int true "Model id"
// @Param        filename path string true "File name"
// @Success      200 {integer} integer "bytes written"
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} nil
// @Router       /modelstorage/upload/mtl/{id}/{filename} [put]
func (h *ModelStorageHandler) UploadMaterial(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	n, err := h.store.UploadMaterial(id, c.Param("filename"), c.Request.Body)
	h.written(c, "material", n, err)
}

// UploadTexture godoc
// @Summary      Upload a model's texture file
// @Tags         modelstorage
// @Accept       application/octet-stream
// @Produce      json
// @Param        id path int true "Model id"
// @Param        filename path string true "File name"
// @Success      200 {integer} integer "bytes written"
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} nil
// @Router       /modelstorage/upload/tex/{id}/{filename} [put]
func (h *ModelStorageHandler) UploadTexture(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	n, err := h.store.UploadTexture(id, c.Param("filename"), c.Request.Body)
	h.written(c, "texture", n, err)
}

func (h *ModelStorageHandler) written(c *gin.Context, kind string, n int64, err error) {
	if err != nil {
		respondError(c, err)
		return
	}
	middleware.RecordUpload(kind, n)
	c.JSON(http.StatusOK, n)
}

// List godoc
// @Summary      List models
// @Tags         modelstorage
// @Produce      json
// @Success      200 {array} Model
// @Router       /modelstorage/ [get]
func (h *ModelStorageHandler) List(c *gin.Context) {
	list, err := h.store.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Lookup godoc
// @Summary      Get one model
// @Tags         modelstorage
// @Produce      json
// @Param        id path int true "Model id"
// @Success      200 {object} Model
// @Failure      404 {object} nil
// @Router       /modelstorage/lookup/{id} [get]
func (h *ModelStorageHandler) Lookup(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	model, err := h.store.Lookup(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model)
}

// Files godoc
// @Summary      List files in the models directory
// @Description  Lists what is on disk, including files no model row refers to
// @Tags         models
// @Produce      json
// @Success      200 {array} string
// @Router       /models/ [get]
func (h *ModelStorageHandler) Files(c *gin.Context) {
	names, err := h.store.Files()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, names)
}

// Serve godoc
// @Summary      Download a stored file
// @Tags         models
// @Param        filename path string true "File name"
// @Success      200 {file} file
// @Failure      404
// @Router       /models/{filename} [get]
func (h *ModelStorageHandler) Serve(c *gin.Context) {
	path, err := h.store.Path(c.Param("filename"))
	if err != nil {
		respondError(c, err)
		return
	}
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && !info.Mode().IsRegular()) {
		c.Status(http.StatusNotFound)
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.File(path)
}
