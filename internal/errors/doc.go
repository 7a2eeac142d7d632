// Package errors provides structured errors for the rpg-babele project.
//
// Errors carry a code, a user-facing message, an optional cause and
// metadata. They convert to and from gRPC status errors at the transport
// boundary.
//
// The merge engine itself never returns errors: a missing or malformed
// translation degrades to the untranslated document. Errors are reserved for
// the layers around it:
//   - Repositories return NotFound for unknown translation entries and wrap
//     storage failures as Internal
//   - Orchestrators return InvalidArgument for bad input and NotFound for
//     unknown converters
//   - Converter registration failures surface as Unavailable and are logged,
//     never fatal
//
// # Basic Usage
//
//	err := errors.NotFound("translation entry not found").
//	    WithMeta("collection", "dnd5e.classfeatures").
//	    WithMeta("key", entryKey)
//
//	if err := repo.PutCollection(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to import compendium")
//	}
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("Language", input.Language, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # gRPC
//
//	out, err := h.service.Translate(ctx, input)
//	if err != nil {
//	    return nil, errors.ToGRPCError(err)
//	}
package errors
