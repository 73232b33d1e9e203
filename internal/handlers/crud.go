package handlers

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"mercado/internal/models"
	"mercado/internal/repositories"
)

// Service defines what a resource handler needs from the layer below.
// services.Crud satisfies it.
type Service[T any] interface {
	Count() (int64, error)
	List(q repositories.ListQuery) ([]T, error)
	Find(cond string, arg any, orderBy string) ([]T, error)
	Get(id uint) (*T, error)
	Create(rec *T) error
	Update(id uint, fields map[string]any) (*T, error)
	Delete(id uint) error
}

// Filter maps a query parameter onto a WHERE condition for the collection
// route. String filters match by substring, numeric ones by equality.
type Filter struct {
	Param   string // query parameter name
	Column  string // column the value matches against
	Numeric bool   // coerce to a number and match by equality
	OrderBy string // ascending sort column for the matches
}

// Config describes how one resource is exposed over HTTP: its envelope
// keys, message spellings, query filters and body conversions.
type Config[T any, C any, U any] struct {
	Singular    string
	Plural      string
	ListColumns []string // optional projection for the full listing
	ListOrderBy string   // defaults to "id"
	Filters     []Filter
	IDByPath    bool // lookup via GET /:id instead of GET /?id=
	CreatedMsg  func(id uint) string
	DeletedMsg  func(id uint) string
	Build       func(body C) T
	Fields      func(body U) map[string]any
}

// Resource is the CRUD handler shared by all resources, parameterized by
// the record type T, the create body C and the partial update body U.
type Resource[T models.Entity, C any, U any] struct {
	service  Service[T]
	cfg      Config[T, C, U]
	validate *validator.Validate
}

// NewResource creates a resource handler from a service and its config.
func NewResource[T models.Entity, C any, U any](service Service[T], cfg Config[T, C, U]) *Resource[T, C, U] {
	if cfg.ListOrderBy == "" {
		cfg.ListOrderBy = "id"
	}
	return &Resource[T, C, U]{
		service:  service,
		cfg:      cfg,
		validate: newValidator(),
	}
}

// newValidator builds a validator that reports field names by their json
// tag, so 400 detail matches the request body's spelling.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// RegisterRoutes registers the resource's routes with the Fiber app.
func (h *Resource[T, C, U]) RegisterRoutes(router fiber.Router) {
	routes := router.Group("/" + h.cfg.Plural)
	routes.Get("/", h.HandleCollection)
	if h.cfg.IDByPath {
		routes.Get("/:id", h.HandleGetByID)
	}
	routes.Post("/", h.HandleCreate)
	routes.Put("/:id", h.HandleUpdate)
	routes.Delete("/:id", h.HandleDelete)
}

// HandleCollection serves the collection route. It dispatches on whichever
// recognized query parameter is present: ?id= is a strict lookup, a
// configured filter narrows the listing, and with no parameter the full
// list plus a total count is returned.
func (h *Resource[T, C, U]) HandleCollection(c *fiber.Ctx) error {
	if !h.cfg.IDByPath {
		if raw := c.Query("id"); raw != "" {
			id, err := parseIDParam("id", raw)
			if err != nil {
				return err
			}
			rec, err := h.service.Get(id)
			if err != nil {
				return err
			}
			return ok(c, fiber.Map{h.cfg.Singular: rec})
		}
	}

	for _, f := range h.cfg.Filters {
		raw := c.Query(f.Param)
		if raw == "" {
			continue
		}
		var (
			recs []T
			err  error
		)
		if f.Numeric {
			var id uint
			if id, err = parseIDParam(f.Param, raw); err != nil {
				return err
			}
			recs, err = h.service.Find(f.Column+" = ?", id, f.OrderBy)
		} else {
			recs, err = h.service.Find(f.Column+" LIKE ?", "%"+raw+"%", f.OrderBy)
		}
		if err != nil {
			return err
		}
		// The original API answers filters under the singular key even
		// though the value is an array.
		return ok(c, fiber.Map{h.cfg.Singular: recs})
	}

	total, err := h.service.Count()
	if err != nil {
		return err
	}
	recs, err := h.service.List(repositories.ListQuery{
		OrderBy: h.cfg.ListOrderBy,
		Columns: h.cfg.ListColumns,
	})
	if err != nil {
		return err
	}
	return ok(c, fiber.Map{
		"msg":        fmt.Sprintf("Total %s: %d", h.cfg.Plural, total),
		h.cfg.Plural: recs,
	})
}

// HandleGetByID serves the path-based strict lookup for resources
// configured with IDByPath.
func (h *Resource[T, C, U]) HandleGetByID(c *fiber.Ctx) error {
	id, err := parseIDParam("id", c.Params("id"))
	if err != nil {
		return err
	}
	rec, err := h.service.Get(id)
	if err != nil {
		return err
	}
	return ok(c, fiber.Map{h.cfg.Singular: rec})
}

// HandleCreate validates the full create body, inserts the record and
// answers 201 with the new ID.
func (h *Resource[T, C, U]) HandleCreate(c *fiber.Ctx) error {
	var body C
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(body); err != nil {
		return err
	}

	rec := h.cfg.Build(body)
	if err := h.service.Create(&rec); err != nil {
		return err
	}
	return createdOk(c, fiber.Map{
		"msg":          h.cfg.CreatedMsg(rec.GetID()),
		h.cfg.Singular: rec,
	})
}

// HandleUpdate validates the id and the partial body, applies only the
// supplied fields and answers with the bare updated record. An empty body
// is a valid no-op.
func (h *Resource[T, C, U]) HandleUpdate(c *fiber.Ctx) error {
	id, err := parseIDParam("id", c.Params("id"))
	if err != nil {
		return err
	}

	var body U
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(body); err != nil {
		return err
	}

	rec, err := h.service.Update(id, h.cfg.Fields(body))
	if err != nil {
		return err
	}
	return ok(c, rec)
}

// HandleDelete removes the record and answers with a confirmation message,
// not the deleted body.
func (h *Resource[T, C, U]) HandleDelete(c *fiber.Ctx) error {
	id, err := parseIDParam("id", c.Params("id"))
	if err != nil {
		return err
	}
	if err := h.service.Delete(id); err != nil {
		return err
	}
	return ok(c, fiber.Map{
		"msg": h.cfg.DeletedMsg(id),
	})
}

// parseIDParam coerces an id-like parameter to a number. A non-numeric
// value is a validation failure, not a missing record.
func parseIDParam(name, raw string) (uint, error) {
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, &ValidationError{Fields: map[string]string{
			name: fmt.Sprintf("Parameter '%s' must be a number", name),
		}}
	}
	return uint(n), nil
}
