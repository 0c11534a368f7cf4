// Package importer pulls candidate entries out of foreign JSON documents and
// HTML pages so they can be bulk-added to the catalog.
package importer

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/tidwall/gjson"

	"github.com/hungryops/lunchpick/internal/utils"
	"github.com/hungryops/lunchpick/pkg/catalog"
)

// Candidate is one entry extracted from an import source, not yet added to
// the catalog. Price and tags are optional; the usual add-time rules (trim,
// default weight) still apply downstream.
type Candidate struct {
	Name  string
	Price *int
	Tags  []string
}

// Read loads an import source, which is either a local file path or an
// http(s) URL.
func Read(source string) ([]byte, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return fetch(source)
	}
	return os.ReadFile(source)
}

func fetch(url string) ([]byte, error) {
	client := retryablehttp.NewClient()
	client.RetryMax = 3
	client.Logger = nil

	resp, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d fetching %s", resp.StatusCode, url)
	}
	return io.ReadAll(resp.Body)
}

// ParseJSON extracts candidates from a JSON document. It accepts either a
// top-level array or an object with an "items" array, and reads "name" (or
// "title"), "price" and "tags" from each element, skipping elements without a
// usable name. Prices go through the same digit-stripping normalization as
// interactive input.
func ParseJSON(data []byte) []Candidate {
	root := gjson.ParseBytes(data)
	list := root
	if !root.IsArray() {
		list = root.Get("items")
	}
	if !list.IsArray() {
		return nil
	}

	var out []Candidate
	list.ForEach(func(_, el gjson.Result) bool {
		name := el.Get("name").String()
		if name == "" {
			name = el.Get("title").String()
		}
		if strings.TrimSpace(name) == "" {
			utils.Log.Debugf("Skipping JSON element without a name: %s", el.Raw)
			return true
		}
		c := Candidate{Name: name}
		if price := el.Get("price"); price.Exists() {
			c.Price = catalog.ParsePrice(price.String())
		}
		el.Get("tags").ForEach(func(_, tag gjson.Result) bool {
			if t := strings.TrimSpace(tag.String()); t != "" {
				c.Tags = append(c.Tags, t)
			}
			return true
		})
		out = append(out, c)
		return true
	})
	return out
}

// ParseHTML extracts candidate names from an HTML page using a CSS selector,
// one candidate per matched element. Text is whitespace-trimmed; empty and
// duplicate matches are dropped.
func ParseHTML(data []byte, selector string) ([]Candidate, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(data)))
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	var out []Candidate
	doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
		name := strings.TrimSpace(sel.Text())
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		out = append(out, Candidate{Name: name})
	})
	return out, nil
}
