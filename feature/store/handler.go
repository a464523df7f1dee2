package store

import (
	"bytes"
	"errors"
	"net/url"
	"strconv"

	"bucket-manager/core/logger"
	"bucket-manager/core/utils"

	"github.com/gofiber/fiber/v2"
	fiberutils "github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for bucket and object operations.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the bucket and object routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/buckets")
	group.Get("/", h.HandleListBuckets)
	group.Post("/", h.HandleCreateBucket)
	group.Delete("/:bucket", h.HandleDeleteBucket)
	group.Get("/:bucket/exists", h.HandleBucketExists)
	group.Get("/:bucket/location", h.HandleBucketLocation)
	group.Get("/:bucket/website", h.HandleWebsiteStatus)
	group.Put("/:bucket/website", h.HandleEnableWebsite)
	group.Get("/:bucket/objects", h.HandleListObjects)
	group.Delete("/:bucket/objects", h.HandleEmptyBucket)
	group.Get("/:bucket/objects/*", h.HandleDownload)
	group.Put("/:bucket/objects/*", h.HandleUpload)
	group.Delete("/:bucket/objects/*", h.HandleDeleteObject)
}

// CreateBucketRequest is the body of a bucket creation request.
type CreateBucketRequest struct {
	Name string `json:"name"`
}

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrBucketNotFound), errors.Is(err, ErrObjectNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrBucketAlreadyExists), errors.Is(err, ErrBucketNotEmpty), errors.Is(err, ErrPartialDelete):
		return fiber.StatusConflict
	case errors.Is(err, ErrInvalidBucketName), errors.Is(err, ErrUnknownLength):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrWebsiteUnsupported):
		return fiber.StatusNotImplemented
	default:
		return fiber.StatusInternalServerError
	}
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	status := statusFor(err)
	l := logger.WithRayID(h.service.logger, c)
	if status >= fiber.StatusInternalServerError {
		l.Error(msg, zap.Error(err))
	} else {
		l.Warn(msg, zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// Values read from the request alias the fasthttp buffer, which is reused once
// the handler returns. The SDK keeps bucket names and keys past that point, so
// everything passed to the service is copied first.

// objectKey extracts the object key from the wildcard segment.
func objectKey(c *fiber.Ctx) (string, error) {
	return url.PathUnescape(fiberutils.CopyString(c.Params("*")))
}

func bucketParam(c *fiber.Ctx) string {
	return fiberutils.CopyString(c.Params("bucket"))
}

func query(c *fiber.Ctx, key string) string {
	return fiberutils.CopyString(c.Query(key))
}

// HandleListBuckets lists all buckets.
// @Summary List Buckets
// @Description Lists the names of all buckets visible to the configured credentials.
// @Tags buckets
// @Produce json
// @Success 200 {object} map[string]interface{} "Bucket names"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Security ApiKeyAuth
// @Router /buckets [get]
func (h *Handler) HandleListBuckets(c *fiber.Ctx) error {
	names, err := h.service.ListBuckets(c.Context())
	if err != nil {
		return h.fail(c, "List buckets failed", err)
	}
	return c.JSON(fiber.Map{"buckets": names})
}

// HandleCreateBucket creates a public bucket.
// @Summary Create Bucket
// @Description Creates a publicly readable bucket. Names starting with "www." are enabled as web sites. Names outside [a-z0-9.] are rejected.
// @Tags buckets
// @Accept json
// @Produce json
// @Param request body CreateBucketRequest true "Bucket name"
// @Success 201 {object} map[string]string "Created bucket"
// @Failure 400 {object} map[string]string "Invalid name"
// @Failure 409 {object} map[string]string "Bucket exists"
// @Security ApiKeyAuth
// @Router /buckets [post]
func (h *Handler) HandleCreateBucket(c *fiber.Ctx) error {
	var req CreateBucketRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	// Never substitute a sanitized name behind an API caller's back
	if sanitized := utils.SanitizeBucketName(req.Name); sanitized != req.Name {
		return h.fail(c, "Rejected bucket name", StrictNames(req.Name, sanitized))
	}

	name, err := h.service.CreateBucket(c.Context(), req.Name)
	if err != nil {
		return h.fail(c, "Create bucket failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"bucket": name})
}

// HandleDeleteBucket empties and deletes a bucket.
// @Summary Delete Bucket
// @Description Deletes every object of the bucket, then the bucket itself. Not atomic.
// @Tags buckets
// @Produce json
// @Param bucket path string true "Bucket name"
// @Success 200 {object} map[string]string "Deleted"
// @Failure 409 {object} map[string]string "Partially emptied"
// @Security ApiKeyAuth
// @Router /buckets/{bucket} [delete]
func (h *Handler) HandleDeleteBucket(c *fiber.Ctx) error {
	bucket := bucketParam(c)
	if err := h.service.DeleteBucket(c.Context(), bucket); err != nil {
		return h.fail(c, "Delete bucket failed", err)
	}
	return c.JSON(fiber.Map{"status": "deleted", "bucket": bucket})
}

// HandleBucketExists checks for a bucket.
// @Summary Bucket Exists
// @Tags buckets
// @Produce json
// @Param bucket path string true "Bucket name"
// @Success 200 {object} map[string]interface{} "Existence"
// @Security ApiKeyAuth
// @Router /buckets/{bucket}/exists [get]
func (h *Handler) HandleBucketExists(c *fiber.Ctx) error {
	bucket := bucketParam(c)
	exists, err := h.service.BucketExists(c.Context(), bucket)
	if err != nil {
		return h.fail(c, "Bucket lookup failed", err)
	}
	return c.JSON(fiber.Map{"bucket": bucket, "exists": exists})
}

// HandleBucketLocation returns the region of a bucket.
// @Summary Bucket Location
// @Tags buckets
// @Produce json
// @Param bucket path string true "Bucket name"
// @Success 200 {object} map[string]string "Region"
// @Security ApiKeyAuth
// @Router /buckets/{bucket}/location [get]
func (h *Handler) HandleBucketLocation(c *fiber.Ctx) error {
	bucket := bucketParam(c)
	location, err := h.service.BucketLocation(c.Context(), bucket)
	if err != nil {
		return h.fail(c, "Bucket location failed", err)
	}
	return c.JSON(fiber.Map{"bucket": bucket, "location": location})
}

// HandleWebsiteStatus reports whether website hosting is enabled.
// @Summary Website Status
// @Tags website
// @Produce json
// @Param bucket path string true "Bucket name"
// @Success 200 {object} map[string]interface{} "Website status"
// @Security ApiKeyAuth
// @Router /buckets/{bucket}/website [get]
func (h *Handler) HandleWebsiteStatus(c *fiber.Ctx) error {
	bucket := bucketParam(c)
	enabled, err := h.service.IsWebsiteEnabled(c.Context(), bucket)
	if err != nil {
		return h.fail(c, "Website status failed", err)
	}
	return c.JSON(fiber.Map{"bucket": bucket, "enabled": enabled})
}

// HandleEnableWebsite enables website hosting.
// @Summary Enable Website
// @Description Serves the bucket as a web site with index.html as index document.
// @Tags website
// @Produce json
// @Param bucket path string true "Bucket name"
// @Param errorPage query string false "Error document key"
// @Success 200 {object} map[string]string "Enabled"
// @Security ApiKeyAuth
// @Router /buckets/{bucket}/website [put]
func (h *Handler) HandleEnableWebsite(c *fiber.Ctx) error {
	bucket := bucketParam(c)
	if err := h.service.EnableWebsite(c.Context(), bucket, query(c, "errorPage")); err != nil {
		return h.fail(c, "Enable website failed", err)
	}
	return c.JSON(fiber.Map{"status": "enabled", "bucket": bucket})
}

// HandleListObjects lists objects under a prefix.
// @Summary List Objects
// @Tags objects
// @Produce json
// @Param bucket path string true "Bucket name"
// @Param prefix query string false "Key prefix"
// @Success 200 {object} map[string]interface{} "Object summaries"
// @Security ApiKeyAuth
// @Router /buckets/{bucket}/objects [get]
func (h *Handler) HandleListObjects(c *fiber.Ctx) error {
	objects, err := h.service.GetAllObjectData(c.Context(), bucketParam(c), query(c, "prefix"))
	if err != nil {
		return h.fail(c, "List objects failed", err)
	}
	return c.JSON(fiber.Map{"objects": objects, "count": len(objects)})
}

// HandleEmptyBucket deletes every object of a bucket.
// @Summary Empty Bucket
// @Tags objects
// @Produce json
// @Param bucket path string true "Bucket name"
// @Success 200 {object} map[string]string "Emptied"
// @Failure 409 {object} map[string]string "Partially emptied"
// @Security ApiKeyAuth
// @Router /buckets/{bucket}/objects [delete]
func (h *Handler) HandleEmptyBucket(c *fiber.Ctx) error {
	bucket := bucketParam(c)
	if err := h.service.EmptyBucket(c.Context(), bucket); err != nil {
		return h.fail(c, "Empty bucket failed", err)
	}
	return c.JSON(fiber.Map{"status": "emptied", "bucket": bucket})
}

// HandleDownload streams an object.
// @Summary Download Object
// @Tags objects
// @Produce octet-stream
// @Param bucket path string true "Bucket name"
// @Param key path string true "Object key"
// @Success 200 {file} file "Object content"
// @Failure 404 {object} map[string]string "Not found"
// @Security ApiKeyAuth
// @Router /buckets/{bucket}/objects/{key} [get]
func (h *Handler) HandleDownload(c *fiber.Ctx) error {
	key, err := objectKey(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid object key"})
	}

	rc, err := h.service.DownloadFile(c.Context(), bucketParam(c), key)
	if err != nil {
		return h.fail(c, "Download failed", err)
	}

	c.Set(fiber.HeaderContentType, utils.ContentType(key))
	// fasthttp closes the stream once the body is written
	return c.SendStream(rc)
}

// HandleUpload stores the request body as an object.
// @Summary Upload Object
// @Description Stores the request body under the key; the content type is inferred from the key suffix.
// @Tags objects
// @Accept octet-stream
// @Produce json
// @Param bucket path string true "Bucket name"
// @Param key path string true "Object key"
// @Param acl query string false "Canned ACL (public-read, private)"
// @Success 201 {object} UploadResult "Upload result"
// @Security ApiKeyAuth
// @Router /buckets/{bucket}/objects/{key} [put]
func (h *Handler) HandleUpload(c *fiber.Ctx) error {
	key, err := objectKey(c)
	if err != nil || utils.TrimLeadingSlashes(key) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid object key"})
	}

	var opts []UploadOption
	switch acl := ACL(query(c, "acl")); acl {
	case "":
	case ACLPublicRead, ACLPrivate:
		opts = append(opts, WithACL(acl))
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unsupported acl " + strconv.Quote(string(acl))})
	}

	body := c.Body()
	result, err := h.service.UploadStream(c.Context(), bucketParam(c), key, bytes.NewReader(body), int64(len(body)), opts...)
	if err != nil {
		return h.fail(c, "Upload failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

// HandleDeleteObject deletes an object.
// @Summary Delete Object
// @Tags objects
// @Produce json
// @Param bucket path string true "Bucket name"
// @Param key path string true "Object key"
// @Success 200 {object} map[string]string "Deleted"
// @Security ApiKeyAuth
// @Router /buckets/{bucket}/objects/{key} [delete]
func (h *Handler) HandleDeleteObject(c *fiber.Ctx) error {
	key, err := objectKey(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid object key"})
	}

	if err := h.service.DeleteObject(c.Context(), bucketParam(c), key); err != nil {
		return h.fail(c, "Delete object failed", err)
	}
	return c.JSON(fiber.Map{"status": "deleted", "key": utils.TrimLeadingSlashes(key)})
}
