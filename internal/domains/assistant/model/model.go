package model

import "errors"

const EntityName = "assistant"

const (
	FlowSearchQuery     = "search_query"
	FlowDescription     = "property_description"
	FlowRecommendations = "similar_properties"
)

const (
	MsgUnavailable    = "The assistant is unavailable right now. Please try again."
	MsgSchemaMismatch = "The assistant returned an unexpected answer. Please try again."
)

// ErrSchemaMismatch marks a model reply that could not be decoded into, or
// failed validation against, the flow's output shape.
var ErrSchemaMismatch = errors.New("model output does not match the expected schema")
