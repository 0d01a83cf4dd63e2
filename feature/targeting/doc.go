// Package targeting validates advertising targeting specs and estimates their reach.
//
// A Spec binds targeting Options (countries, keywords or connections, gender, age class)
// to an ad account. Construction with New is free of validation and I/O; ValidateSpec
// checks the options against the constraint catalog, ValidateKeywords asks the Graph API
// whether each keyword can be targeted, and FetchReach requests the estimated audience size.
//
// # Batching
//
// BatchReaches estimates many specs with one Graph batch call per MaxBatchSize specs.
// Specs are sent as given, without local validation. Results keep the order of the
// input. A sub-request the API answers with an error, or a failed batch call, only
// marks the affected items as failed.
//
// # Wire format
//
// The reach estimate parameters are flat: countries and connections are comma joined and
// keyword_list is comma joined after each keyword's own commas are replaced by %2C. This
// escaping is a quirk of the Graph API's list parameters and is never reversed here.
//
// # HTTP Endpoints
//
//   - GET  /targeting/catalog : Lists valid genders, age classes and countries.
//   - POST /targeting/reach : Estimates one spec.
//   - POST /targeting/reach/batch : Estimates many specs.
//   - POST /targeting/keywords/validate : Validates keywords one by one.
package targeting
