package models

import (
	"encoding/json"
	"fmt"
)

// BlockKind discriminates the closed set of content block variants a page
// can hold. The set is fixed; adding a kind means touching DecodeBlock and
// Render together.
type BlockKind string

const (
	BlockKindHero      BlockKind = "hero"
	BlockKindGallery   BlockKind = "gallery"
	BlockKindText      BlockKind = "text"
	BlockKindImageText BlockKind = "imageText"
	BlockKindQuote     BlockKind = "quote"
	BlockKindSpacer    BlockKind = "spacer"
)

// Gallery block sources.
const (
	GallerySourceProject = "project" // photos resolved from the relational store
	GallerySourceMedia   = "media"   // explicit CMS-managed image URLs
)

type HeroBlock struct {
	Image      string `json:"image"`
	Heading    string `json:"heading"`
	Subheading string `json:"subheading,omitempty"`
}

type GalleryBlock struct {
	Source    string   `json:"source"`
	ProjectID string   `json:"projectId,omitempty"`
	Images    []string `json:"images,omitempty"`
}

type TextBlock struct {
	Content string `json:"content"`
}

type ImageTextBlock struct {
	Image         string `json:"image"`
	Content       string `json:"content"`
	ImagePosition string `json:"imagePosition,omitempty"` // "left" or "right"
}

type QuoteBlock struct {
	Quote       string `json:"quote"`
	Attribution string `json:"attribution,omitempty"`
}

type SpacerBlock struct {
	Size string `json:"size"` // "small", "medium" or "large"
}

// Block is a tagged union over the block variants. Exactly one of the
// variant pointers is non-nil, matching Kind.
type Block struct {
	Kind      BlockKind
	Hero      *HeroBlock
	Gallery   *GalleryBlock
	Text      *TextBlock
	ImageText *ImageTextBlock
	Quote     *QuoteBlock
	Spacer    *SpacerBlock
}

func (b *Block) UnmarshalJSON(data []byte) error {
	var probe struct {
		Kind BlockKind `json:"blockType"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return fmt.Errorf("decoding block discriminator: %w", err)
	}

	b.Kind = probe.Kind
	switch probe.Kind {
	case BlockKindHero:
		b.Hero = &HeroBlock{}
		return json.Unmarshal(data, b.Hero)
	case BlockKindGallery:
		b.Gallery = &GalleryBlock{}
		return json.Unmarshal(data, b.Gallery)
	case BlockKindText:
		b.Text = &TextBlock{}
		return json.Unmarshal(data, b.Text)
	case BlockKindImageText:
		b.ImageText = &ImageTextBlock{}
		return json.Unmarshal(data, b.ImageText)
	case BlockKindQuote:
		b.Quote = &QuoteBlock{}
		return json.Unmarshal(data, b.Quote)
	case BlockKindSpacer:
		b.Spacer = &SpacerBlock{}
		return json.Unmarshal(data, b.Spacer)
	default:
		return fmt.Errorf("unknown block type %q", probe.Kind)
	}
}

func (b Block) MarshalJSON() ([]byte, error) {
	switch b.Kind {
	case BlockKindHero:
		return marshalBlock(b.Kind, b.Hero)
	case BlockKindGallery:
		return marshalBlock(b.Kind, b.Gallery)
	case BlockKindText:
		return marshalBlock(b.Kind, b.Text)
	case BlockKindImageText:
		return marshalBlock(b.Kind, b.ImageText)
	case BlockKindQuote:
		return marshalBlock(b.Kind, b.Quote)
	case BlockKindSpacer:
		return marshalBlock(b.Kind, b.Spacer)
	default:
		return nil, fmt.Errorf("unknown block type %q", b.Kind)
	}
}

func marshalBlock(kind BlockKind, fields any) ([]byte, error) {
	payload, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}
	var asMap map[string]any
	if err := json.Unmarshal(payload, &asMap); err != nil {
		return nil, err
	}
	asMap["blockType"] = kind
	return json.Marshal(asMap)
}

// DecodeBlocks parses a page's stored block list. Any unknown block type
// fails the whole decode; ingestion rejects such pages up front.
func DecodeBlocks(data []byte) ([]Block, error) {
	var blocks []Block
	if err := json.Unmarshal(data, &blocks); err != nil {
		return nil, err
	}
	return blocks, nil
}

// GalleryResolver looks up the photos of a project for gallery blocks with a
// project source.
type GalleryResolver func(projectID string) ([]*Photo, error)

// RenderedBlock is the normalized presentational form handed to the site's
// block renderer: the discriminator plus fully resolved data.
type RenderedBlock struct {
	BlockType BlockKind       `json:"blockType"`
	Hero      *HeroBlock      `json:"hero,omitempty"`
	Photos    []*Photo        `json:"photos,omitempty"`
	Images    []string        `json:"images,omitempty"`
	Text      *TextBlock      `json:"text,omitempty"`
	ImageText *ImageTextBlock `json:"imageText,omitempty"`
	Quote     *QuoteBlock     `json:"quote,omitempty"`
	Spacer    *SpacerBlock    `json:"spacer,omitempty"`
}

// Render produces the presentational form of a block. Gallery blocks with a
// project source resolve their photos through the resolver; every other
// variant passes its fields through.
func (b Block) Render(resolve GalleryResolver) (RenderedBlock, error) {
	switch b.Kind {
	case BlockKindHero:
		return RenderedBlock{BlockType: b.Kind, Hero: b.Hero}, nil
	case BlockKindGallery:
		if b.Gallery.Source == GallerySourceProject {
			photos, err := resolve(b.Gallery.ProjectID)
			if err != nil {
				return RenderedBlock{}, fmt.Errorf("resolving gallery for project %q: %w", b.Gallery.ProjectID, err)
			}
			return RenderedBlock{BlockType: b.Kind, Photos: photos}, nil
		}
		return RenderedBlock{BlockType: b.Kind, Images: b.Gallery.Images}, nil
	case BlockKindText:
		return RenderedBlock{BlockType: b.Kind, Text: b.Text}, nil
	case BlockKindImageText:
		return RenderedBlock{BlockType: b.Kind, ImageText: b.ImageText}, nil
	case BlockKindQuote:
		return RenderedBlock{BlockType: b.Kind, Quote: b.Quote}, nil
	case BlockKindSpacer:
		return RenderedBlock{BlockType: b.Kind, Spacer: b.Spacer}, nil
	default:
		return RenderedBlock{}, fmt.Errorf("unknown block type %q", b.Kind)
	}
}
