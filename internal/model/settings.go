package model

// StoreSettings is the single store-wide configuration record.
type StoreSettings struct {
	ShopName string `json:"shopName"`

	// LogoURL is either a URL or a data: URL captured client-side.
	LogoURL string `json:"logoUrl"`

	ContactEmail   string          `json:"contactEmail"`
	Location       string          `json:"location"`
	WhatsappNumber string          `json:"whatsappNumber"`
	HeroTitle      string          `json:"heroTitle"`
	HeroSubtitle   string          `json:"heroSubtitle"`
	HeroImageURL   string          `json:"heroImageUrl"`
	HeroTextColor  string          `json:"heroTextColor"`
	Socials        []SocialLink    `json:"socials"`
	QuickLinks     []QuickLink     `json:"quickLinks"`
	PaymentMethods []PaymentMethod `json:"paymentMethods"`
}

// Clone returns a deep copy of s.
func (s StoreSettings) Clone() StoreSettings {
	s.Socials = cloneSlice(s.Socials)
	s.QuickLinks = cloneSlice(s.QuickLinks)
	s.PaymentMethods = cloneSlice(s.PaymentMethods)
	return s
}

// SocialLink is a footer link to a social network.
type SocialLink struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
	Icon string `json:"icon"`
}

// ItemID returns the link id.
func (l SocialLink) ItemID() string { return l.ID }

// WithID returns a copy of l carrying id.
func (l SocialLink) WithID(id string) SocialLink {
	l.ID = id
	return l
}

// QuickLink is a footer navigation link.
type QuickLink struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	URL  string `json:"url"`
}

// ItemID returns the link id.
func (l QuickLink) ItemID() string { return l.ID }

// WithID returns a copy of l carrying id.
func (l QuickLink) WithID(id string) QuickLink {
	l.ID = id
	return l
}

// PaymentMethod is a payment option shown at checkout.
type PaymentMethod struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Details string `json:"details"`
	LogoURL string `json:"logoUrl"`
}

// ItemID returns the payment method id.
func (m PaymentMethod) ItemID() string { return m.ID }

// WithID returns a copy of m carrying id.
func (m PaymentMethod) WithID(id string) PaymentMethod {
	m.ID = id
	return m
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}
