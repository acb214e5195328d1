// Package form binds HTTP request bodies to model structs and validates
// them with rules declared once, on the model, instead of per request.
//
// A model declares its field names and rules with tags:
//
//	type CreateUser struct {
//		Name  string `json:"name" form:"name" validate:"required,min=2,max=50"`
//		Email string `json:"email" form:"email" validate:"required,email"`
//		Age   int    `json:"age" form:"age" validate:"min=13"`
//	}
//
// Decode reads JSON or form-encoded bodies by Content-Type and strips any
// HTML from string fields via a bluemonday strict policy, so handlers never
// see markup in plain-text inputs. Validate applies the declared rules and
// returns a field-to-messages map:
//
//	var req CreateUser
//	if err := form.DecodeAndValidate(r, &req); err != nil {
//		var verr form.Errors
//		if errors.As(err, &verr) {
//			// verr: {"email": ["must be a valid email address"]}
//		}
//	}
//
// Supported rules: required, email, min=N, max=N (rune length for strings,
// value bounds for numbers).
package form
