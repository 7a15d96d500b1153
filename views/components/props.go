package components

import (
	"github.com/a-h/templ"
	"github.com/loganlanou/academy/internal/lazy"
	"github.com/loganlanou/academy/views/helpers"
)

// PlaceholderImage replaces images that fail to load.
const PlaceholderImage = "/public/images/placeholder.svg"

const defaultPlaceholderClass = "h-64 w-full animate-pulse rounded-lg bg-gray-200"

type ImageProps struct {
	Src    string
	Alt    string
	Class  string
	Width  int
	Height int
	// Eager disables native lazy loading for above-the-fold images.
	Eager bool
}

func (p ImageProps) src() string {
	if p.Src == "" {
		return PlaceholderImage
	}
	return p.Src
}

type LazyProps struct {
	// Src is the fragment endpoint the browser fetches when the section
	// approaches the viewport.
	Src string
	// Region decides whether the content is rendered inline.
	Region *lazy.Region
	// Margin is passed to the browser observer. Defaults to lazy.DefaultMargin.
	Margin string
	// Placeholder replaces the default pulsing block.
	Placeholder templ.Component
	// PlaceholderClass is merged onto the default block classes.
	PlaceholderClass string
	Class            string
}

func (p LazyProps) regionName() string {
	if p.Region == nil {
		return ""
	}
	return p.Region.Name
}

func (p LazyProps) margin() string {
	if p.Margin == "" {
		return lazy.DefaultMargin
	}
	return p.Margin
}

func (p LazyProps) placeholderClass() string {
	return helpers.Class(defaultPlaceholderClass, p.PlaceholderClass)
}
