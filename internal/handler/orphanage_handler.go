package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"orphanage-service/internal/model"
	"orphanage-service/internal/repository"
	"orphanage-service/internal/upload"
	"orphanage-service/internal/validator"
	"orphanage-service/internal/view"
	"orphanage-service/pkg/logger"
	"orphanage-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// orphanageRules is the rule table a creation payload is checked against.
// Every rule is evaluated and all violations are reported in one response.
var orphanageRules = validator.RuleSet{
	"name":             {Required: true, Kind: validator.String},
	"latitude":         {Required: true, Kind: validator.Number},
	"longitude":        {Required: true, Kind: validator.Number},
	"about":            {Required: true, Kind: validator.String, MaxLen: 300},
	"instructions":     {Required: true, Kind: validator.String},
	"opening_hours":    {Required: true, Kind: validator.String},
	"open_on_weekends": {Required: true, Kind: validator.Boolean},
}

// OrphanageHandler binds the HTTP surface to the repository, the upload
// store and the view renderer.
type OrphanageHandler struct {
	repo    *repository.OrphanageRepository
	uploads *upload.LocalStore
	view    *view.Renderer
}

func NewOrphanageHandler(repo *repository.OrphanageRepository, uploads *upload.LocalStore, renderer *view.Renderer) *OrphanageHandler {
	return &OrphanageHandler{repo: repo, uploads: uploads, view: renderer}
}

// Register mounts the orphanage routes on the echo instance.
func (h *OrphanageHandler) Register(e *echo.Echo) {
	e.GET("/orphanages", h.List)
	e.GET("/orphanages/:id", h.Show)
	e.POST("/orphanages", h.Create)
}

// List handles retrieving all orphanages with their images
func (h *OrphanageHandler) List(c echo.Context) error {
	log := logger.FromContext(c)

	defer prometheus.TrackDBOperation("list")(time.Now())
	orphanages, err := h.repo.ListAll()
	if err != nil {
		log.Error("Failed to list orphanages", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Internal Server Error",
		})
	}

	prometheus.RecordOrphanageOperation("list")
	log.Info("Orphanages retrieved successfully", zap.Int("count", len(orphanages)))
	return c.JSON(http.StatusOK, h.view.RenderMany(orphanages))
}

// Show handles retrieving a single orphanage by ID
func (h *OrphanageHandler) Show(c echo.Context) error {
	log := logger.FromContext(c)
	param := c.Param("id")

	id, err := strconv.ParseUint(param, 10, 64)
	if err != nil {
		log.Warn("Invalid orphanage id", zap.String("orphanage_id", param))
		return c.JSON(http.StatusNotFound, echo.Map{
			"message": "Orphanage not found",
		})
	}

	defer prometheus.TrackDBOperation("get")(time.Now())
	orphanage, err := h.repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Warn("Orphanage not found", zap.String("orphanage_id", param))
			return c.JSON(http.StatusNotFound, echo.Map{
				"message": "Orphanage not found",
			})
		}
		log.Error("Failed to get orphanage", zap.String("orphanage_id", param), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Internal Server Error",
		})
	}

	prometheus.RecordOrphanageOperation("show")
	log.Info("Orphanage retrieved successfully",
		zap.String("orphanage_id", param),
		zap.String("name", orphanage.Name))
	return c.JSON(http.StatusOK, h.view.Render(orphanage))
}

// Create handles registering a new orphanage from a multipart payload. The
// uploaded image files are written to the store first, then the text fields
// are validated as a whole: any violation aborts before the database is
// touched and the just-written files are removed again.
func (h *OrphanageHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)

	form, err := c.MultipartForm()
	if err != nil {
		log.Error("Invalid multipart payload", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Invalid request data",
		})
	}

	fields := make(map[string]string, len(form.Value))
	for name, values := range form.Value {
		if len(values) > 0 {
			fields[name] = values[0]
		}
	}

	var paths []string
	for _, file := range form.File["images"] {
		path, err := h.uploads.Save(file)
		if err != nil {
			log.Error("Failed to store uploaded image",
				zap.String("filename", file.Filename),
				zap.Error(err))
			h.removeUploads(paths, log)
			return c.JSON(http.StatusInternalServerError, echo.Map{
				"message": "Internal Server Error",
			})
		}
		paths = append(paths, path)
	}

	coerced, errs := orphanageRules.Validate(fields)
	if imageErrs := validator.ValidateImagePaths(paths); imageErrs != nil {
		if errs == nil {
			errs = validator.Errors{}
		}
		errs.Merge(imageErrs)
	}
	if len(errs) > 0 {
		prometheus.RecordValidationFailure()
		log.Warn("Orphanage creation rejected", zap.Error(errs))
		h.removeUploads(paths, log)
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Validation fails",
			"errors":  errs,
		})
	}

	images := make([]model.Image, 0, len(paths))
	for _, path := range paths {
		images = append(images, model.Image{Path: path})
	}

	orphanage := model.Orphanage{
		Name:           coerced["name"].(string),
		Latitude:       coerced["latitude"].(float64),
		Longitude:      coerced["longitude"].(float64),
		About:          coerced["about"].(string),
		Instructions:   coerced["instructions"].(string),
		OpeningHours:   coerced["opening_hours"].(string),
		OpenOnWeekends: coerced["open_on_weekends"].(bool),
		Images:         images,
	}

	defer prometheus.TrackDBOperation("create")(time.Now())
	if err := h.repo.Create(&orphanage); err != nil {
		log.Error("Failed to create orphanage",
			zap.String("name", orphanage.Name),
			zap.Error(err))
		h.removeUploads(paths, log)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Internal Server Error",
		})
	}

	prometheus.RecordOrphanageOperation("create")
	prometheus.RecordImagesUploaded(len(paths))
	log.Info("Orphanage created successfully",
		zap.Uint("orphanage_id", orphanage.ID),
		zap.String("name", orphanage.Name),
		zap.Int("images", len(orphanage.Images)))
	return c.JSON(http.StatusCreated, h.view.Render(&orphanage))
}

// removeUploads deletes files written for a request that was rejected or
// failed, so no unreferenced images accumulate in the store.
func (h *OrphanageHandler) removeUploads(paths []string, log *zap.Logger) {
	for _, path := range paths {
		if err := h.uploads.Remove(path); err != nil {
			log.Warn("Failed to remove uploaded image",
				zap.String("path", path),
				zap.Error(err))
		}
	}
}
