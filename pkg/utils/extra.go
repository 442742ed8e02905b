// Request parameter helpers shared by the controllers.
package utils

import (
	"fmt"
	"strconv"
	"time"

	"github.com/DhavalSuthar-24/courtplan/internal/common"
	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// ParseIDParam reads a positive integer path parameter.
func ParseIDParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, common.InvalidArgumentf("invalid %s", name)
	}
	return uint(id), nil
}

// ParseOptionalUintQuery returns nil when the query parameter is absent.
func ParseOptionalUintQuery(c *gin.Context, name string) (*uint, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || v == 0 {
		return nil, common.InvalidArgumentf("invalid %s parameter", name)
	}
	id := uint(v)
	return &id, nil
}

// ParseOptionalBoolQuery returns nil when the query parameter is absent.
func ParseOptionalBoolQuery(c *gin.Context, name string) (*bool, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, common.InvalidArgumentf("invalid %s parameter", name)
	}
	return &v, nil
}

// ParseTime accepts RFC 3339 instants, or a bare YYYY-MM-DD date taken as midnight UTC.
func ParseTime(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse(dateLayout, raw); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("expected RFC 3339 time or YYYY-MM-DD date, got %q", raw)
}

// ParseOptionalTimeQuery returns nil when the query parameter is absent.
func ParseOptionalTimeQuery(c *gin.Context, name string) (*time.Time, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, nil
	}
	t, err := ParseTime(raw)
	if err != nil {
		return nil, common.InvalidArgumentf("invalid %s parameter: %v", name, err)
	}
	return &t, nil
}

// ParseRequiredTimeQuery is ParseOptionalTimeQuery for mandatory parameters.
func ParseRequiredTimeQuery(c *gin.Context, name string) (time.Time, error) {
	t, err := ParseOptionalTimeQuery(c, name)
	if err != nil {
		return time.Time{}, err
	}
	if t == nil {
		return time.Time{}, common.InvalidArgumentf("%s parameter is required", name)
	}
	return *t, nil
}

// ParsePagination reads page and page_size, falling back to page 1 and defaultSize.
// page_size is capped at 100.
func ParsePagination(c *gin.Context, defaultSize int) (page, pageSize int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err = strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultSize)))
	if err != nil || pageSize < 1 {
		pageSize = defaultSize
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}
