// Package photo defines the photo record shared by the remote source, the
// history store and the views.
package photo

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// ErrInvalidRecord is returned when a record lacks a required field.
var ErrInvalidRecord = errors.New("invalid photo record")

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// URLs are the image renditions of a photo.
type URLs struct {
	Small string `json:"small"`
	Full  string `json:"full"`
}

// Links are the web and download endpoints of a photo.
type Links struct {
	HTML             string `json:"html"`
	Download         string `json:"download"`
	DownloadLocation string `json:"download_location,omitempty"`
}

// User is the photographer.
type User struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
}

// Record is one photo's metadata. Records are compared by ID only.
type Record struct {
	ID    string `json:"id"`
	URLs  URLs   `json:"urls"`
	Color string `json:"color,omitempty"`
	Links Links  `json:"links"`
	User  User   `json:"user"`
}

// Decode parses an API document into a validated Record.
func Decode(data []byte) (Record, error) {
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, fmt.Errorf("failed to decode photo: %w", err)
	}
	if err := rec.Validate(); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Validate checks the required fields.
func (r Record) Validate() error {
	var missing []string
	if r.ID == "" {
		missing = append(missing, "id")
	}
	if r.URLs.Small == "" {
		missing = append(missing, "urls.small")
	}
	if r.URLs.Full == "" {
		missing = append(missing, "urls.full")
	}
	if r.Links.HTML == "" {
		missing = append(missing, "links.html")
	}
	if r.Links.Download == "" {
		missing = append(missing, "links.download")
	}
	if r.User.FirstName == "" {
		missing = append(missing, "user.first_name")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidRecord, strings.Join(missing, ", "))
	}
	return nil
}

// AuthorName is "first last", or just the first name when there is no last name.
func (r Record) AuthorName() string {
	if r.User.LastName == "" {
		return r.User.FirstName
	}
	return r.User.FirstName + " " + r.User.LastName
}

// fallbackColor is used when the record carries no usable color.
var fallbackColor = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}

// BackgroundColor parses Color (#rrggbb or #rgb).
func (r Record) BackgroundColor() color.NRGBA {
	hex := strings.TrimPrefix(r.Color, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return fallbackColor
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return fallbackColor
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

// ContainsID reports whether list holds a record with the given id.
func ContainsID(list []Record, id string) bool {
	for _, r := range list {
		if r.ID == id {
			return true
		}
	}
	return false
}
