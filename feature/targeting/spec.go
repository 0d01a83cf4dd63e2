package targeting

import (
	"strconv"
	"strings"

	"reach-estimator/core/graph"

	"go.uber.org/zap"
)

// Spec is a targeting specification bound to an ad account.
// A Spec is not safe for concurrent use.
type Spec struct {
	client  graph.Client
	account string
	options Options
	logger  *zap.Logger
}

// New creates a Spec. It stores its inputs as given and performs neither validation nor I/O.
func New(client graph.Client, account string, options Options) *Spec {
	return &Spec{
		client:  client,
		account: account,
		options: options,
		logger:  zap.NewNop(),
	}
}

// Parse creates a Spec and validates it with ValidateSpec.
func Parse(client graph.Client, account string, options Options) (*Spec, error) {
	s := New(client, account, options)
	if err := s.ValidateSpec(); err != nil {
		return nil, err
	}
	return s, nil
}

// WithLogger sets the logger used for diagnostics and returns the Spec.
func (s *Spec) WithLogger(l *zap.Logger) *Spec {
	if l != nil {
		s.logger = l
	}
	return s
}

// Options returns the options the Spec was created with.
func (s *Spec) Options() Options {
	return s.options
}

// ValidateSpec checks gender, age class and countries against the catalog.
// Keyword and connection presence is checked by FetchReach.
func (s *Spec) ValidateSpec() error {
	o := s.options

	if o.Gender != "" && !IsValidGender(o.Gender) {
		return ErrInvalidGender
	}

	if o.AgeClass != "" {
		if _, ok := AgeRangeFor(o.AgeClass); !ok {
			return &InvalidAgeClassError{AgeClass: o.AgeClass}
		}
	}

	if len(o.Countries) == 0 {
		return ErrMissingCountries
	}
	if invalid := InvalidCountries(o.Countries); len(invalid) > 0 {
		return &InvalidCountriesError{Countries: invalid}
	}

	return nil
}

// Normalized returns the Graph API parameters describing the audience.
func (s *Spec) Normalized() graph.Params {
	o := s.options
	params := graph.Params{}

	if len(o.Countries) > 0 {
		countries := make([]string, len(o.Countries))
		for i, c := range o.Countries {
			countries[i] = strings.ToUpper(c)
		}
		params["countries"] = strings.Join(countries, ",")
	}

	if len(o.Keywords) > 0 {
		params["keyword_list"] = joinKeywords(o.Keywords)
	}

	if len(o.Connections) > 0 {
		params["connections"] = strings.Join(o.Connections, ",")
	}

	if o.Gender != "" {
		params["gender"] = o.Gender
	}

	if r, ok := AgeRangeFor(o.AgeClass); ok {
		params["age_min"] = strconv.Itoa(r.Min)
		params["age_max"] = strconv.Itoa(r.Max)
	}

	return params
}

// Request validates the Spec and returns its reach estimate call.
func (s *Spec) Request() (graph.Request, error) {
	if err := s.checkReachable(); err != nil {
		return graph.Request{}, err
	}
	return s.reachRequest(), nil
}

// reachRequest builds the reach estimate call from the normalized options as they
// are. Batches send it unvalidated and let the Graph API answer per item.
func (s *Spec) reachRequest() graph.Request {
	return graph.NewGetRequest(reachPath(s.account), s.Normalized())
}

// checkReachable runs every check needed before a reach estimate can be requested.
func (s *Spec) checkReachable() error {
	if !s.options.HasTargetingMode() {
		return ErrMissingTargetingMode
	}
	if s.account == "" {
		return ErrMissingAccount
	}
	return s.ValidateSpec()
}

// reachPath returns the reach estimate edge of an ad account, adding the act_ prefix
// when the account is given as a bare id.
func reachPath(account string) string {
	if !strings.HasPrefix(account, "act_") {
		account = "act_" + account
	}
	return account + "/reachestimate"
}
