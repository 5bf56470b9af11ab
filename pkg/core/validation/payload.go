package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/wadjakorntonsri/go-catalog-api/pkg/core/domain"
)

// CollectionPayload is the raw JSON body of a collection create or update.
// Fields stay raw so an absent field can be told apart from an explicit null.
type CollectionPayload struct {
	Name        json.RawMessage `json:"name"`
	Description json.RawMessage `json:"description"`
	Images      json.RawMessage `json:"images"`
}

// ToInput validates a create request.
func (p CollectionPayload) ToInput() (domain.CollectionInput, error) {
	var in domain.CollectionInput

	name, err := requiredString(p.Name, "name")
	if err != nil {
		return in, err
	}
	in.Name = name

	if in.Description, err = optionalString(p.Description, "description"); err != nil {
		return in, err
	}

	if in.Images, err = NormalizeCollectionImages(p.Images); err != nil {
		return in, err
	}
	return in, nil
}

// ToPatch validates an update request. Only supplied fields are set.
func (p CollectionPayload) ToPatch() (domain.CollectionPatch, error) {
	var patch domain.CollectionPatch

	if present(p.Name) {
		name, err := requiredString(p.Name, "name")
		if err != nil {
			return patch, err
		}
		patch.Name = domain.Some(name)
	}
	if present(p.Description) {
		desc, err := optionalString(p.Description, "description")
		if err != nil {
			return patch, err
		}
		patch.Description = domain.Some(desc)
	}
	if present(p.Images) {
		images, err := NormalizeCollectionImages(p.Images)
		if err != nil {
			return patch, err
		}
		patch.Images = domain.Some(images)
	}
	return patch, nil
}

// ProductPayload is the raw JSON body of a product create or update
type ProductPayload struct {
	Title        json.RawMessage `json:"title"`
	Description  json.RawMessage `json:"description"`
	Image        json.RawMessage `json:"image"`
	Dimensions   json.RawMessage `json:"dimensions"`
	Price        json.RawMessage `json:"price"`
	CollectionID json.RawMessage `json:"collectionId"`
	IsAvailable  json.RawMessage `json:"isAvailable"`
}

// ToInput validates a create request. A missing or null image stores an empty list.
func (p ProductPayload) ToInput() (domain.ProductInput, error) {
	var in domain.ProductInput
	var err error

	if in.Title, err = requiredString(p.Title, "title"); err != nil {
		return in, err
	}
	if in.Description, err = optionalString(p.Description, "description"); err != nil {
		return in, err
	}

	in.Image = []domain.ImageRef{}
	if !isNull(p.Image) {
		if in.Image, err = NormalizeImages(p.Image); err != nil {
			return in, err
		}
	}

	if in.Dimensions, err = DecodeDimensions(p.Dimensions); err != nil {
		return in, err
	}
	if in.Price, err = DecodePrice(p.Price); err != nil {
		return in, err
	}

	if isNull(p.CollectionID) {
		return in, fmt.Errorf("%w: collectionId", domain.ErrRequiredField)
	}
	if in.CollectionID, err = DecodeID(p.CollectionID); err != nil {
		return in, err
	}

	if present(p.IsAvailable) {
		available, err := DecodeAvailability(p.IsAvailable)
		if err != nil {
			return in, err
		}
		in.IsAvailable = &available
	}
	return in, nil
}

// ToPatch validates an update request. An explicit null image clears the list.
func (p ProductPayload) ToPatch() (domain.ProductPatch, error) {
	var patch domain.ProductPatch

	if present(p.Title) {
		title, err := requiredString(p.Title, "title")
		if err != nil {
			return patch, err
		}
		patch.Title = domain.Some(title)
	}
	if present(p.Description) {
		desc, err := optionalString(p.Description, "description")
		if err != nil {
			return patch, err
		}
		patch.Description = domain.Some(desc)
	}
	if present(p.Image) {
		images := []domain.ImageRef{}
		if !isNull(p.Image) {
			var err error
			if images, err = NormalizeImages(p.Image); err != nil {
				return patch, err
			}
		}
		patch.Image = domain.Some(images)
	}
	if present(p.Dimensions) {
		dims, err := DecodeDimensions(p.Dimensions)
		if err != nil {
			return patch, err
		}
		patch.Dimensions = domain.Some(dims)
	}
	if present(p.Price) {
		price, err := DecodePrice(p.Price)
		if err != nil {
			return patch, err
		}
		patch.Price = domain.Some(price)
	}
	if present(p.CollectionID) {
		id, err := DecodeID(p.CollectionID)
		if err != nil {
			return patch, err
		}
		patch.CollectionID = domain.Some(id)
	}
	if present(p.IsAvailable) {
		available, err := DecodeAvailability(p.IsAvailable)
		if err != nil {
			return patch, err
		}
		patch.IsAvailable = domain.Some(available)
	}
	return patch, nil
}

// DecodeAvailability accepts only the JSON literals true and false.
func DecodeAvailability(raw json.RawMessage) (bool, error) {
	switch string(bytes.TrimSpace(raw)) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, domain.ErrInvalidAvailability
}

// DecodeDimensions accepts an object or a JSON-encoded string holding one. Null clears.
func DecodeDimensions(raw json.RawMessage) (*domain.Dimensions, error) {
	if isNull(raw) {
		return nil, nil
	}
	body := bytes.TrimSpace(raw)
	if body[0] == '"' {
		var text string
		if err := json.Unmarshal(body, &text); err != nil {
			return nil, domain.ErrInvalidDimensions
		}
		body = bytes.TrimSpace([]byte(text))
	}
	if len(body) == 0 || body[0] != '{' {
		return nil, domain.ErrInvalidDimensions
	}

	var dims domain.Dimensions
	if err := json.Unmarshal(body, &dims); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidDimensions, err)
	}
	return &dims, nil
}

// DecodePrice accepts a JSON number or numeric string. Null means no price.
func DecodePrice(raw json.RawMessage) (decimal.NullDecimal, error) {
	var price decimal.NullDecimal
	if isNull(raw) {
		return price, nil
	}
	if err := price.UnmarshalJSON(bytes.TrimSpace(raw)); err != nil {
		return price, fmt.Errorf("%w: price: %v", domain.ErrInvalidBody, err)
	}
	return price, nil
}

// DecodeID reads an identifier sent as a JSON number or numeric string.
func DecodeID(raw json.RawMessage) (int64, error) {
	body := bytes.TrimSpace(raw)
	if len(body) > 0 && body[0] == '"' {
		var text string
		if err := json.Unmarshal(body, &text); err != nil {
			return 0, domain.ErrInvalidIdentifier
		}
		return ParseID(text)
	}
	return ParseID(string(body))
}

func requiredString(raw json.RawMessage, field string) (string, error) {
	if isNull(raw) {
		return "", fmt.Errorf("%w: %s", domain.ErrRequiredField, field)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("%w: %s must be a string", domain.ErrInvalidBody, field)
	}
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("%w: %s", domain.ErrRequiredField, field)
	}
	return s, nil
}

func optionalString(raw json.RawMessage, field string) (*string, error) {
	if isNull(raw) {
		return nil, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("%w: %s must be a string", domain.ErrInvalidBody, field)
	}
	return &s, nil
}

func present(raw json.RawMessage) bool {
	return len(raw) > 0
}
