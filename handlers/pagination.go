package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/kristjanb/petition/models"
)

// parsePage reads ?page=N, coercing absent, malformed, or sub-1 values
// to the first page.
func parsePage(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// buildLinks constructs the self/prev/next navigation for a listing
// page rooted at basePath ("/" or "/admin/").
//
// Next is present whenever the fetched page is exactly full. That is a
// cheap "more data might exist" heuristic, not an exact remaining-count
// check: it under-links when the total is an exact multiple of the page
// size, and correctly omits next on a final partial page.
func buildLinks(basePath string, page, returned int) models.Links {
	links := models.Links{
		Self: models.Link{Href: fmt.Sprintf("%s?page=%d", basePath, page)},
	}

	if page > 1 {
		links.Prev = &models.Link{Href: fmt.Sprintf("%s?page=%d", basePath, page-1)}
	}

	if returned == models.PageSize {
		links.Next = &models.Link{Href: fmt.Sprintf("%s?page=%d", basePath, page+1)}
	}

	return links
}

// pageInfo derives the current/last page pair. When the total count was
// unavailable Last stays 0 and the views omit it.
func pageInfo(page, total int, countOK bool) models.PageInfo {
	info := models.PageInfo{Current: page}
	if countOK {
		info.Last = (total + models.PageSize - 1) / models.PageSize
	}
	return info
}
