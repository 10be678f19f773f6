package flickr

import (
	"net/url"
	"slices"
	"strconv"
	"strings"
)

// Request parameter keys shared by the flickr.people.* methods.
const (
	ParamMethod    = "method"
	ParamUserID    = "user_id"
	ParamUsername  = "username"
	ParamFindEmail = "find_email"
	ParamPerPage   = "per_page"
	ParamPage      = "page"
	ParamExtras    = "extras"
)

// Parameter is a single request parameter.
type Parameter struct {
	Key   string
	Value string
}

// Parameters is an ordered list of request parameters. Keys are neither
// sorted nor deduplicated.
type Parameters []Parameter

// NewParameters starts a parameter list for the given API method.
func NewParameters(method string) Parameters {
	return Parameters{{Key: ParamMethod, Value: method}}
}

// Add appends a parameter verbatim. The receiver is never modified, so lists
// built from a shared prefix stay independent.
func (p Parameters) Add(key, value string) Parameters {
	return append(p[:len(p):len(p)], Parameter{Key: key, Value: value})
}

// AddPositive appends an integer parameter only when it is strictly positive.
func (p Parameters) AddPositive(key string, value int) Parameters {
	if value <= 0 {
		return p
	}

	return p.Add(key, strconv.Itoa(value))
}

// AddSet appends a comma-joined multi-valued parameter. A nil slice omits the
// parameter; an empty, non-nil slice still sends the key with an empty value.
func (p Parameters) AddSet(key string, values []string) Parameters {
	if values == nil {
		return p
	}

	return p.Add(key, strings.Join(values, ","))
}

// Method returns the API method name, or "" if none was set.
func (p Parameters) Method() string {
	value, _ := p.Get(ParamMethod)

	return value
}

// Get returns the value of the first parameter with the given key.
func (p Parameters) Get(key string) (string, bool) {
	for _, param := range p {
		if param.Key == key {
			return param.Value, true
		}
	}

	return "", false
}

// Values converts the parameters to url.Values for form encoding.
func (p Parameters) Values() url.Values {
	values := make(url.Values, len(p))
	for _, param := range p {
		values.Add(param.Key, param.Value)
	}

	return values
}

// Without returns a copy of the parameters with every key in keys removed.
func (p Parameters) Without(keys ...string) Parameters {
	kept := make(Parameters, 0, len(p))

	for _, param := range p {
		if !slices.Contains(keys, param.Key) {
			kept = append(kept, param)
		}
	}

	return kept
}

// String renders the parameters in build order, for logging.
func (p Parameters) String() string {
	var builder strings.Builder

	for i, param := range p {
		if i > 0 {
			builder.WriteByte('&')
		}

		builder.WriteString(url.QueryEscape(param.Key))
		builder.WriteByte('=')
		builder.WriteString(url.QueryEscape(param.Value))
	}

	return builder.String()
}

// PhotosParams holds the optional arguments of the photo list methods.
type PhotosParams struct {
	// Extras lists additional photo fields to return. A nil slice omits the
	// extras parameter; an empty slice sends it with an empty value.
	Extras []string
	// PerPage is sent only when positive.
	PerPage int
	// Page is sent only when positive.
	Page int
}

// DefaultPhotosParams returns photo list arguments using MinExtras.
func DefaultPhotosParams(perPage, page int) *PhotosParams {
	return &PhotosParams{
		Extras:  MinExtras(),
		PerPage: perPage,
		Page:    page,
	}
}

// WithExtras returns a copy of the params with the given extras.
func (p *PhotosParams) WithExtras(extras ...string) *PhotosParams {
	clone := p.clone()
	clone.Extras = append([]string{}, extras...)

	return clone
}

// WithPerPage returns a copy of the params with the given page size.
func (p *PhotosParams) WithPerPage(perPage int) *PhotosParams {
	clone := p.clone()
	clone.PerPage = perPage

	return clone
}

// WithPage returns a copy of the params with the given page number.
func (p *PhotosParams) WithPage(page int) *PhotosParams {
	clone := p.clone()
	clone.Page = page

	return clone
}

func (p *PhotosParams) clone() *PhotosParams {
	if p == nil {
		return &PhotosParams{}
	}

	clone := *p
	if p.Extras != nil {
		clone.Extras = append([]string{}, p.Extras...)
	}

	return &clone
}

// Apply appends per_page, page and extras, in that order.
func (p *PhotosParams) Apply(params Parameters) Parameters {
	if p == nil {
		return params
	}

	params = params.AddPositive(ParamPerPage, p.PerPage)
	params = params.AddPositive(ParamPage, p.Page)

	return params.AddSet(ParamExtras, p.Extras)
}
