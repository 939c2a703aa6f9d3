package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Common attribute keys for survey API operations.
// These follow OpenTelemetry semantic conventions where applicable.
const (
	// Client attributes
	AttrClientIP   = "client.ip"
	AttrClientAddr = "client.address"

	// HTTP attributes
	AttrHTTPMethod = "http.method"
	AttrHTTPRoute  = "http.route"
	AttrHTTPStatus = "http.status_code"
	AttrRequestID  = "http.request_id"

	// Domain attributes
	AttrSurveyID   = "survey.id"
	AttrEntityType = "survey.entity_type"
	AttrEntityID   = "survey.entity_id"
	AttrCatalog    = "catalog.type"

	// User/Auth attributes
	AttrUserID  = "user.id"
	AttrGroupID = "user.group_id"
	AttrAdmin   = "user.admin"

	// Storage attributes
	AttrDBTable     = "db.table"
	AttrDBOperation = "db.operation"
)

// Span names for operations.
// Format: <component>.<operation>
const (
	SpanHTTPRequest   = "api.request"
	SpanStoreCreate   = "store.create"
	SpanStoreGet      = "store.get"
	SpanStoreList     = "store.list"
	SpanStoreUpdate   = "store.update"
	SpanStoreDelete   = "store.delete"
	SpanSurveyTouch   = "store.touch_survey"
	SpanPolicyResolve = "policy.require_survey"
)

// ClientIP returns an attribute for client IP address
func ClientIP(ip string) attribute.KeyValue {
	return attribute.String(AttrClientIP, ip)
}

// ClientAddr returns an attribute for full client address
func ClientAddr(addr string) attribute.KeyValue {
	return attribute.String(AttrClientAddr, addr)
}

// HTTPMethod returns an attribute for the request method
func HTTPMethod(method string) attribute.KeyValue {
	return attribute.String(AttrHTTPMethod, method)
}

// HTTPRoute returns an attribute for the matched route pattern
func HTTPRoute(route string) attribute.KeyValue {
	return attribute.String(AttrHTTPRoute, route)
}

// HTTPStatus returns an attribute for the response status code
func HTTPStatus(status int) attribute.KeyValue {
	return attribute.Int(AttrHTTPStatus, status)
}

// RequestID returns an attribute for the request id
func RequestID(id string) attribute.KeyValue {
	return attribute.String(AttrRequestID, id)
}

// SurveyID returns an attribute for the survey a request targets
func SurveyID(id string) attribute.KeyValue {
	return attribute.String(AttrSurveyID, id)
}

// EntityType returns an attribute for the child entity type
func EntityType(t string) attribute.KeyValue {
	return attribute.String(AttrEntityType, t)
}

// EntityID returns an attribute for the child entity id
func EntityID(id string) attribute.KeyValue {
	return attribute.String(AttrEntityID, id)
}

// Catalog returns an attribute for the catalog type
func Catalog(t string) attribute.KeyValue {
	return attribute.String(AttrCatalog, t)
}

// UserID returns an attribute for the authenticated user id
func UserID(id string) attribute.KeyValue {
	return attribute.String(AttrUserID, id)
}

// GroupID returns an attribute for the caller's tenant group
func GroupID(id string) attribute.KeyValue {
	return attribute.String(AttrGroupID, id)
}

// Admin returns an attribute for the administrator flag
func Admin(admin bool) attribute.KeyValue {
	return attribute.Bool(AttrAdmin, admin)
}

// DBTable returns an attribute for the table an operation touches
func DBTable(table string) attribute.KeyValue {
	return attribute.String(AttrDBTable, table)
}

// DBOperation returns an attribute for the storage operation kind
func DBOperation(op string) attribute.KeyValue {
	return attribute.String(AttrDBOperation, op)
}

// WithSpan runs fn inside a span with the given name, recording any returned
// error on the span before ending it.
func WithSpan(ctx context.Context, name string, fn func(ctx context.Context) error, attrs ...attribute.KeyValue) error {
	ctx, span := StartSpan(ctx, name, trace.WithAttributes(attrs...))
	defer span.End()

	if err := fn(ctx); err != nil {
		RecordError(ctx, err)
		return err
	}
	return nil
}

// SpanName builds a span name from component and operation.
func SpanName(component, operation string) string {
	return fmt.Sprintf("%s.%s", component, operation)
}
