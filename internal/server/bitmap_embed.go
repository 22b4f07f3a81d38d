package server

import (
	"bsteg/api"
	"bsteg/api/bsteg/EmbedImage"
	"bsteg/internal/logging"
	"bsteg/pkg/bmp"
	"bsteg/pkg/config"
	"bsteg/pkg/steg"
	"github.com/gin-gonic/gin"
	flatbuffers "github.com/google/flatbuffers/go"
	"io"
	"net/http"
)

// EmbedImageHandler godoc
//
// @Summary Embed a payload into the supplied bitmap image
// @Description This endpoint will embed the supplied payload bytes into the color channels of the supplied bitmap, and return the modified bitmap. All errors are returned as JSON
// @Tags bitmap
// @Accept json
// @Produce json
// @Param requestBody body api.EmbedImageRequest true "Body with the bitmap to embed into and the payload bytes to embed"
// @Success 200 {object} api.EmbedImageResponse
// @Failure 400 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /bitmap/embed [post]
func EmbedImageHandler(ctx *gin.Context) {
	var requestBody api.EmbedImageRequest

	logger := logging.BuildLoggerFromCtx(ctx)
	logger.Debug("Processing image embed request")

	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		logger.WithError(err).Error("Error decoding request body")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, errRequestBodyDecode)
		return
	}

	image, err := bmp.Decode(requestBody.Image, config.BitmapDecodeConfig{})
	if err != nil {
		logger.WithError(err).Error("Error decoding request image")
		abortWithCodecError(ctx, err, errEmbed)
		return
	}

	encoder := steg.NewEncoder(image)
	if err = encoder.Embed(requestBody.Payload); err != nil {
		logger.WithError(err).Error("Error embedding payload into image")
		abortWithCodecError(ctx, err, errEmbed)
		return
	}
	encodedImage := encoder.Bytes()

	stats := encoder.Stats()
	logger.With("stats", toHumanizedEmbedStats(stats)).Info("Image embedding was successful")

	ctx.JSON(http.StatusOK, api.EmbedImageResponse{Image: encodedImage, Stats: stats})
}

func handleRawImageEmbedRequest(w http.ResponseWriter, r *http.Request) {
	logger := logging.BuildLogger().WithOperation("raw_embed")

	requestBody, err := io.ReadAll(r.Body)
	if err != nil {
		logger.WithError(err).Error("Error reading request body")
		http.Error(w, "error reading body", http.StatusInternalServerError)
		return
	}

	embedImageRequest := EmbedImage.GetRootAsImageEmbedRequest(requestBody, 0)
	image, err := bmp.Decode(embedImageRequest.ImageBytes(), config.BitmapDecodeConfig{})
	if err != nil {
		logger.WithError(err).Error("Error decoding request image")
		http.Error(w, "supplied image is invalid", http.StatusBadRequest)
		return
	}

	encoder := steg.NewEncoder(image)
	if err = encoder.Embed(embedImageRequest.PayloadBytes()); err != nil {
		logger.WithError(err).Error("Error embedding payload into image")
		http.Error(w, "error embedding payload", statusForError(err))
		return
	}
	encodedImage := encoder.Bytes()

	fbResponseBuilder := flatbuffers.NewBuilder(len(encodedImage))
	imageOffset := fbResponseBuilder.CreateByteVector(encodedImage)
	EmbedImage.ImageEmbedResponseStart(fbResponseBuilder)
	EmbedImage.ImageEmbedResponseAddImage(fbResponseBuilder, imageOffset)
	response := EmbedImage.ImageEmbedResponseEnd(fbResponseBuilder)
	fbResponseBuilder.Finish(response)

	w.Header().Set("Content-Type", "application/octet-stream")
	if _, err = w.Write(fbResponseBuilder.FinishedBytes()); err != nil {
		http.Error(w, "error writing response", http.StatusInternalServerError)
		return
	}
}
