// Package v1alpha1 handles the translation grpc service interface
package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-babele/internal/entities"
	"github.com/KirkDiggler/rpg-babele/internal/errors"
	"github.com/KirkDiggler/rpg-babele/internal/orchestrators/translation"
)

// Request and response field names
const (
	fieldConverter   = "converter"
	fieldSource      = "source"
	fieldTranslation = "translation"
	fieldResult      = "result"
	fieldLanguage    = "language"
	fieldCollection  = "collection"
	fieldDocument    = "document"
	fieldTranslated  = "translated"
	fieldMatchedKey  = "matched_key"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	TranslationService translation.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.TranslationService == nil {
		return errors.InvalidArgument("translation service is required")
	}
	return nil
}

// Handler implements the translation gRPC service
type Handler struct {
	translationService translation.Service
}

var _ TranslationServiceServer = (*Handler)(nil)

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		translationService: cfg.TranslationService,
	}, nil
}

// Merge applies a named converter to the source and translation in the request
func (h *Handler) Merge(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	fields := req.AsMap()

	source, ok := fields[fieldSource]
	if !ok || source == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("source is required"))
	}
	converter, err := stringField(fields, fieldConverter)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.translationService.Merge(ctx, &translation.MergeInput{
		Converter:   converter,
		Source:      source,
		Translation: fields[fieldTranslation],
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return toStruct(map[string]any{
		fieldConverter: output.Converter,
		fieldResult:    output.Result,
	})
}

// Translate overlays the stored translation onto the document in the request
func (h *Handler) Translate(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	fields := req.AsMap()

	document, ok := entities.AsMap(fields[fieldDocument])
	if !ok {
		return nil, errors.ToGRPCError(errors.InvalidArgument("document is required"))
	}

	input := &translation.TranslateInput{Document: entities.Document(document)}
	for name, dst := range map[string]*string{
		fieldLanguage:   &input.Language,
		fieldCollection: &input.Collection,
		fieldConverter:  &input.Converter,
	} {
		value, err := stringField(fields, name)
		if err != nil {
			return nil, errors.ToGRPCError(err)
		}
		*dst = value
	}

	output, err := h.translationService.Translate(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return toStruct(map[string]any{
		fieldDocument:   output.Document,
		fieldTranslated: output.Translated,
		fieldMatchedKey: output.MatchedKey,
		fieldConverter:  output.Converter,
	})
}

func stringField(fields map[string]any, name string) (string, error) {
	value, ok := fields[name]
	if !ok || value == nil {
		return "", nil
	}
	s, ok := value.(string)
	if !ok {
		return "", errors.InvalidArgumentf("%s must be a string", name)
	}
	return s, nil
}

func toStruct(fields map[string]any) (*structpb.Struct, error) {
	plain, _ := entities.Plain(fields).(map[string]any)
	out, err := structpb.NewStruct(plain)
	if err != nil {
		return nil, errors.ToGRPCError(errors.WrapWithCode(err, errors.CodeInternal, "response is not representable"))
	}
	return out, nil
}
