// Package editor models the admin edit form as a closed set of draft
// variants, one per editable entity, dispatched by their kind tag.
package editor

import (
	"bytes"
	"encoding/json"

	"simusmart/internal/model"
)

// Kind tags a draft variant.
type Kind string

const (
	KindProduct       Kind = "product"
	KindCategory      Kind = "category"
	KindSocialLink    Kind = "social-link"
	KindQuickLink     Kind = "quick-link"
	KindPaymentMethod Kind = "payment-method"
)

// Kinds lists every draft kind.
var Kinds = []Kind{KindProduct, KindCategory, KindSocialLink, KindQuickLink, KindPaymentMethod}

// ParseKind converts a tag into a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", model.Invalidf("unknown form kind %q", s)
}

// Draft is the edited value held by the form. The set of implementations
// is closed to this package.
type Draft interface {
	Kind() Kind
	// IsNew reports whether committing the draft creates an entity.
	IsNew() bool
	draft()
}

type ProductDraft struct{ model.Product }

type CategoryDraft struct{ model.Category }

type SocialLinkDraft struct{ model.SocialLink }

type QuickLinkDraft struct{ model.QuickLink }

type PaymentMethodDraft struct{ model.PaymentMethod }

func (ProductDraft) Kind() Kind       { return KindProduct }
func (CategoryDraft) Kind() Kind      { return KindCategory }
func (SocialLinkDraft) Kind() Kind    { return KindSocialLink }
func (QuickLinkDraft) Kind() Kind     { return KindQuickLink }
func (PaymentMethodDraft) Kind() Kind { return KindPaymentMethod }

func (d ProductDraft) IsNew() bool       { return d.ID == "" }
func (d CategoryDraft) IsNew() bool      { return d.ID == "" }
func (d SocialLinkDraft) IsNew() bool    { return d.ID == "" }
func (d QuickLinkDraft) IsNew() bool     { return d.ID == "" }
func (d PaymentMethodDraft) IsNew() bool { return d.ID == "" }

func (ProductDraft) draft()       {}
func (CategoryDraft) draft()      {}
func (SocialLinkDraft) draft()    {}
func (QuickLinkDraft) draft()     {}
func (PaymentMethodDraft) draft() {}

// Decode builds the draft variant named by kind from a JSON form body.
// Unknown fields are rejected.
func Decode(kind Kind, data []byte) (Draft, error) {
	var (
		d   Draft
		err error
	)
	switch kind {
	case KindProduct:
		var v ProductDraft
		err = decodeInto(data, &v.Product)
		d = v
	case KindCategory:
		var v CategoryDraft
		err = decodeInto(data, &v.Category)
		d = v
	case KindSocialLink:
		var v SocialLinkDraft
		err = decodeInto(data, &v.SocialLink)
		d = v
	case KindQuickLink:
		var v QuickLinkDraft
		err = decodeInto(data, &v.QuickLink)
		d = v
	case KindPaymentMethod:
		var v PaymentMethodDraft
		err = decodeInto(data, &v.PaymentMethod)
		d = v
	default:
		return nil, model.Invalidf("unknown form kind %q", kind)
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func decodeInto(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return model.Invalidf("invalid form body: %v", err)
	}
	return nil
}
