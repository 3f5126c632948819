package controllers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
)

type chatBotRequest struct {
	Question string `json:"question" validate:"required"`
}

// ChatBot forwards a question to the AI inference endpoint and passes the
// answer straight back.
func ChatBot(c *gin.Context) {
	var req chatBotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Question is required"})
		return
	}

	body, _ := json.Marshal(gin.H{"question": req.Question})
	resp, err := http.Post(cfg.ChatBotEndpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to send message"})
		return
	}
	defer resp.Body.Close()

	answer, err := io.ReadAll(resp.Body)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to read answer"})
		return
	}

	c.Data(resp.StatusCode, "application/json", answer)
}

// AnalyzeImage re-posts an uploaded scan to the inference service. The model
// path segment selects the analysis (xray or brain-tumor).
func AnalyzeImage(c *gin.Context) {
	model := c.Param("model")
	if model != "xray" && model != "brain-tumor" {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown analysis model"})
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
		return
	}
	defer file.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", header.Filename)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to forward image"})
		return
	}
	if _, err := io.Copy(part, file); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to forward image"})
		return
	}
	writer.Close()

	resp, err := http.Post(cfg.ImageAnalysisEndpoint+"/"+model, writer.FormDataContentType(), &buf)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to reach analysis service"})
		return
	}
	defer resp.Body.Close()

	result, err := io.ReadAll(resp.Body)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to read analysis result"})
		return
	}

	c.Data(resp.StatusCode, "application/json", result)
}
