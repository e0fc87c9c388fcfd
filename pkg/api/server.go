// Package api provides the REST API server for m8codec
package api

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/m8kit/m8codec/pkg/dictcodec"
	"github.com/m8kit/m8codec/pkg/instrument"
	"github.com/m8kit/m8codec/pkg/project"
)

// @title m8codec API
// @version 1.0
// @description API for reading, validating, and exporting Dirtywave M8 project files
// @host localhost:8080
// @BasePath /api/v1

// StartServer starts the API server on the specified port.
func StartServer(port int) error {
	r := gin.Default()

	r.Use(corsMiddleware())

	r.GET("/health", healthCheck)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", healthCheck)
		v1.POST("/project/validate", handleValidate)
		v1.POST("/project/export", handleExport)
		v1.GET("/instruments/families", listInstrumentFamilies)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r.Run(fmt.Sprintf(":%d", port))
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
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "m8codec",
	})
}

// listInstrumentFamilies godoc
// @Summary List supported instrument families
// @Description Returns the instrument family type IDs this codec understands
// @Tags info
// @Produce json
// @Success 200 {object} map[string][]map[string]interface{}
// @Router /api/v1/instruments/families [get]
func listInstrumentFamilies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"families": []gin.H{
			{"type": instrument.TypeWavSynth, "name": "WAVSYNTH"},
			{"type": instrument.TypeMacroSynth, "name": "MACROSYNTH"},
			{"type": instrument.TypeSampler, "name": "SAMPLER"},
			{"type": instrument.TypeFMSynth, "name": "FMSYNTH"},
			{"type": instrument.TypeHyperSynth, "name": "HYPERSYNTH"},
			{"type": instrument.TypeExternal, "name": "EXTERNAL"},
		},
	})
}

// handleValidate godoc
// @Summary Validate a project file
// @Description Upload an .m8s file and receive its cross-reference validation report
// @Tags project
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Project file to validate"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /api/v1/project/validate [post]
func handleValidate(c *gin.Context) {
	p, err := readUploadedProject(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report := p.Validate()
	errs := make([]gin.H, 0, len(report.Errors))
	for _, e := range report.Errors {
		errs = append(errs, gin.H{"path": e.Path, "kind": e.Kind.String()})
	}
	c.JSON(http.StatusOK, gin.H{
		"ok":     report.OK(),
		"errors": errs,
	})
}

// handleExport godoc
// @Summary Export a project to JSON or YAML
// @Description Upload an .m8s file and receive its instrument table as a dict document
// @Tags project
// @Accept multipart/form-data
// @Produce application/octet-stream
// @Param file formData file true "Project file to export"
// @Param format query string false "Output format: json or yaml (default json)"
// @Param enum_mode query string false "Enum rendering: value or name (default name)"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Router /api/v1/project/export [post]
func handleExport(c *gin.Context) {
	p, err := readUploadedProject(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	format := c.DefaultQuery("format", "json")
	modeParam := c.DefaultQuery("enum_mode", "name")
	mode := dictcodec.Name
	if modeParam == "value" {
		mode = dictcodec.Value
	}

	data, contentType, err := ExportProjectAs(p, format, mode)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=project.%s", format))
	c.Data(http.StatusOK, contentType, data)
}

func readUploadedProject(c *gin.Context) (*project.Project, error) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		return nil, fmt.Errorf("no file uploaded")
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file")
	}
	return project.Read(data)
}
