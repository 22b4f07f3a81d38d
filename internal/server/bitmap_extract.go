package server

import (
	"bsteg/api"
	"bsteg/internal/logging"
	"bsteg/pkg/bmp"
	"bsteg/pkg/config"
	"bsteg/pkg/steg"
	"github.com/gin-gonic/gin"
	"net/http"
)

// ExtractImageHandler godoc
//
// @Summary Extract a previously embedded payload from a bitmap image
// @Description This endpoint will extract the payload previously embedded into the supplied bitmap. All errors are returned as JSON
// @Tags bitmap
// @Accept json
// @Produce json
// @Param requestBody body api.ExtractImageRequest true "Body with the bitmap to extract from"
// @Success 200 {object} api.ExtractImageResponse
// @Failure 400 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /bitmap/extract [post]
func ExtractImageHandler(ctx *gin.Context) {
	var requestBody api.ExtractImageRequest

	logger := logging.BuildLoggerFromCtx(ctx)
	logger.Debug("Processing image extract request")

	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		logger.WithError(err).Error("Error decoding request body")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, errRequestBodyDecode)
		return
	}

	image, err := bmp.Decode(requestBody.Image, config.BitmapDecodeConfig{})
	if err != nil {
		logger.WithError(err).Error("Error decoding request image")
		abortWithCodecError(ctx, err, errExtract)
		return
	}

	decoder := steg.NewDecoder(image)
	payload, err := decoder.Extract()
	if err != nil {
		logger.WithError(err).Error("Error extracting payload from image")
		abortWithCodecError(ctx, err, errExtract)
		return
	}

	stats := decoder.Stats()
	logger.With("stats", toHumanizedExtractStats(stats)).Info("Image extraction was successful")

	ctx.JSON(http.StatusOK, api.ExtractImageResponse{Payload: payload, Stats: stats})
}
