package controllers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"runlog/internal/gpx"
	"runlog/internal/importer"

	"github.com/gin-gonic/gin"
)

// maxGPXSizeBytes bounds uploaded track logs.
const maxGPXSizeBytes = 10 << 20

type ImportController struct {
	importer *importer.Importer
}

func NewImportController(imp *importer.Importer) *ImportController {
	return &ImportController{importer: imp}
}

// ImportGPX godoc
// @Summary Import runs from a GPX file
// @Description Parse the uploaded track log and create one run per valid track, skipping duplicates
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "GPX file"
// @Success 201 {object} map[string]interface{} "Import completed"
// @Failure 400 {object} map[string]interface{} "Invalid or empty GPX file"
// @Router /import/gpx [post]
func (ic *ImportController) ImportGPX(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "No file uploaded",
			"error":   "A GPX file is required in the 'file' form field",
		})
		return
	}
	if fileHeader.Size > maxGPXSizeBytes {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "File too large",
			"error":   "GPX files are limited to 10 MB",
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to read uploaded file",
			"error":   err.Error(),
		})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to read uploaded file",
			"error":   err.Error(),
		})
		return
	}

	tracks, err := gpx.Parse(data)
	if err != nil {
		if errors.Is(err, gpx.ErrInvalidFormat) || errors.Is(err, gpx.ErrNoTracks) {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid GPX file",
				"error":   err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to parse GPX file",
			"error":   err.Error(),
		})
		return
	}
	if len(tracks) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid GPX file",
			"error":   "no valid track found in GPX file",
		})
		return
	}

	result, err := ic.importer.ImportTracks(userID, tracks)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to import runs",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": fmt.Sprintf("%d runs imported successfully", result.Imported),
		"data":    result,
	})
}
