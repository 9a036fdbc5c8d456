package helper

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Page holds validated pagination parameters for a list request.
type Page struct {
	Number int
	Size   int
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// ParsePage reads page and page_size query parameters, clamping page_size
// to MaxPageSize. Malformed or non-positive values fall back to defaults.
func ParsePage(c *gin.Context) Page {
	page := Page{Number: 1, Size: DefaultPageSize}

	if n, err := strconv.Atoi(c.Query("page")); err == nil && n > 0 {
		page.Number = n
	}
	if s, err := strconv.Atoi(c.Query("page_size")); err == nil && s > 0 {
		page.Size = s
		if page.Size > MaxPageSize {
			page.Size = MaxPageSize
		}
	}
	return page
}

// Paginated is the list envelope: total count plus next/previous page links.
type Paginated struct {
	Count    int64       `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Results  interface{} `json:"results"`
}

// NewPaginated builds the envelope, deriving absolute page links from the
// incoming request URL.
func NewPaginated(c *gin.Context, page Page, count int64, results interface{}) Paginated {
	out := Paginated{Count: count, Results: results}

	if int64(page.Offset()+page.Size) < count {
		next := pageURL(c, page.Number+1, page.Size)
		out.Next = &next
	}
	if page.Number > 1 {
		prev := pageURL(c, page.Number-1, page.Size)
		out.Previous = &prev
	}
	return out
}

func pageURL(c *gin.Context, number, size int) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	query := c.Request.URL.Query()
	query.Set("page", strconv.Itoa(number))
	query.Set("page_size", strconv.Itoa(size))
	return fmt.Sprintf("%s://%s%s?%s", scheme, c.Request.Host, c.Request.URL.Path, query.Encode())
}
