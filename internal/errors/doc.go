// Package errors provides structured error handling for dungeonforge-api.
//
// Errors carry a code, a message, and optional metadata, and wrap freely:
//
//	err := errors.NotFound("npc not found").WithMeta("npc_id", npcID)
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load npc state")
//	}
//
// The handler layer renders errors as JSON using the code's HTTP status
// mapping (see WriteHTTP). Input validation across multiple fields uses the
// builder:
//
//	vb := errors.NewValidationBuilder()
//	if cfg.Catalog == nil {
//	    vb.RequiredField("Catalog")
//	}
//	return vb.Build()
//
// Layer conventions: repositories return NotFound/AlreadyExists with IDs in
// metadata; orchestrators return InvalidArgument for bad inputs and wrap
// repository errors with business context; handlers convert to HTTP and log
// internals.
package errors
