// Package validator validates electronic mail addresses held by records of
// any host system and reports failures as translation-friendly data.
//
// An email validation checks two things independently: the format of the
// value (package address, strict RFC 1035 domain by default) and its length
// (3 to 320 characters unless configured otherwise). Both checks always run,
// so a value can fail both at once.
//
// # Architecture
//
// The package is split by responsibility:
//
//   - Options / ResolveMap – the declaration schema, static or as a map
//   - Resolver             – turns options into an immutable Config, holding
//     the default message table
//   - Config               – resolved declaration and its skip rules
//   - EmailValidator       – declared fields plus their Config
//   - Validate             – runs the skip rules, then both checks
//   - Rule / Apply         – lightweight Check func plus error meta, shared by
//     the format rule (ValidEmail) and the length rules
//   - ValidationErrors     – ordered result, implements error
//
// A declaration is resolved once, when the host registers it. Invalid
// options fail fast with a *ConfigError matching ErrInvalidConfig. Per-value
// validation never returns an error: failures are data.
//
// # Usage
//
//	v, err := validator.Declare([]string{"email"}, validator.Options{
//	    Minimum:    validator.Int(6),
//	    AllowBlank: true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	errs := v.ValidateValue("email", &user.Email, true)
//	for _, e := range errs {
//	    fmt.Println(e.Field, e.Kind, e.Message)
//	}
//
// # Messages
//
// Default messages come from a Messages table passed to NewResolver. The
// built-in English table is DefaultMessages; embedded translations are
// available through LoadTranslator and MessagesFromTranslator. Message
// templates may use "%{count}" for the length bound. Each ValidationError
// also carries a TranslationKey and TranslationValues so the host can
// translate it later.
package validator
