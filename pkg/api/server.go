// Package api provides the REST API server for osu2vectra
package api

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/vectra-eng/osu2vectra/pkg/converter"
	"github.com/vectra-eng/osu2vectra/pkg/converter/layouts"
)

// @title osu2vectra API
// @version 1.0
// @description API for converting osu!mania charts to Vectra map files
// @host localhost:8080
// @BasePath /api/v1

// StartServer starts the API server on the specified port
func StartServer(port int) error {
	return newRouter().Run(fmt.Sprintf(":%d", port))
}

func newRouter() *gin.Engine {
	r := gin.Default()

	r.Use(corsMiddleware())

	r.GET("/health", healthCheck)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", healthCheck)
		v1.POST("/convert/osu2lua", handleOsuToLua)
		v1.POST("/convert/osu2midi", handleOsuToMIDI)
		v1.GET("/formats", listFormats)
		v1.GET("/layouts", listLayouts)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// healthCheck godoc
// @Summary Health check endpoint
// @Description Returns the health status of the API
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// listFormats godoc
// @Summary List supported formats
// @Description Returns a list of supported file formats
// @Tags info
// @Produce json
// @Success 200 {object} map[string][]string
// @Router /api/v1/formats [get]
func listFormats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"formats":     []string{"osu", "lua", "midi"},
		"conversions": converter.GetSupportedConversions(),
	})
}

// listLayouts godoc
// @Summary List supported key layouts
// @Description Returns the mania key counts the converter supports
// @Tags info
// @Produce json
// @Success 200 {object} map[string][]int
// @Router /api/v1/layouts [get]
func listLayouts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"layouts": layouts.Supported(),
		"default": layouts.DefaultKeys,
	})
}

// handleOsuToLua godoc
// @Summary Convert an osu chart to map.lua
// @Description Upload an .osu file and receive a Vectra map.lua file
// @Tags convert
// @Accept multipart/form-data
// @Produce text/plain
// @Param file formData file true ".osu chart to convert"
// @Param keys query int false "Key count (default: 4)"
// @Param title query string false "Map title (default: chart filename)"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Router /api/v1/convert/osu2lua [post]
func handleOsuToLua(c *gin.Context) {
	text, header, ok := readUpload(c)
	if !ok {
		return
	}

	title := c.Query("title")
	if title == "" {
		title = strings.TrimSuffix(header.Filename, filepath.Ext(header.Filename))
	}
	songPath := fmt.Sprintf("maps/%s/song.mp3", title)

	conv := converter.New(layoutFromQuery(c))
	result, meta, err := conv.OsuToLua(text, title, songPath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Surface the chart's embedded metadata alongside the file
	if meta.Title != "" {
		c.Header("X-Chart-Title", meta.Title)
	}
	if meta.AudioFilename != "" {
		c.Header("X-Chart-Audio", meta.AudioFilename)
	}

	c.Header("Content-Disposition", "attachment; filename=map.lua")
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(result))
}

// handleOsuToMIDI godoc
// @Summary Convert an osu chart to a MIDI preview
// @Description Upload an .osu file and receive a MIDI file
// @Tags convert
// @Accept multipart/form-data
// @Produce application/octet-stream
// @Param file formData file true ".osu chart to convert"
// @Param keys query int false "Key count (default: 4)"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Router /api/v1/convert/osu2midi [post]
func handleOsuToMIDI(c *gin.Context) {
	text, header, ok := readUpload(c)
	if !ok {
		return
	}

	conv := converter.New(layoutFromQuery(c))
	result, err := conv.OsuToMIDI(text)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	outputName := strings.TrimSuffix(header.Filename, filepath.Ext(header.Filename)) + ".mid"
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", outputName))
	c.Data(http.StatusOK, "audio/midi", result)
}

func readUpload(c *gin.Context) (string, *multipart.FileHeader, bool) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return "", nil, false
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file"})
		return "", nil, false
	}

	return string(data), header, true
}

func layoutFromQuery(c *gin.Context) converter.Layout {
	keys, err := strconv.Atoi(c.DefaultQuery("keys", strconv.Itoa(layouts.DefaultKeys)))
	if err != nil {
		keys = layouts.DefaultKeys
	}
	return layouts.New(keys)
}
