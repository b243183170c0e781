package huhforms

import "charm.land/huh/v2"

// LoginValues is bound to the login form.
type LoginValues struct {
	Email    string
	Password string
}

// NewLoginForm builds the email and password form.
func NewLoginForm(v *LoginValues) *huh.Form {
	return build(
		huh.NewInput().
			Key("email").
			Title("Email").
			Placeholder("you@example.com").
			Validate(required("email")).
			Value(&v.Email),

		huh.NewInput().
			Key("password").
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Validate(required("password")).
			Value(&v.Password),
	)
}

// RegisterValues is bound to the registration form. ConfirmPassword never
// leaves the client.
type RegisterValues struct {
	Username        string
	Email           string
	TenantName      string
	TenantDomain    string
	Password        string
	ConfirmPassword string
}

// NewRegisterForm builds the account and organization form.
func NewRegisterForm(v *RegisterValues) *huh.Form {
	return build(
		huh.NewInput().
			Key("username").
			Title("Username").
			Validate(required("username")).
			Value(&v.Username),

		huh.NewInput().
			Key("email").
			Title("Email").
			Validate(required("email")).
			Value(&v.Email),

		huh.NewInput().
			Key("tenant_name").
			Title("Organization Name").
			Validate(required("organization name")).
			Value(&v.TenantName),

		huh.NewInput().
			Key("tenant_domain").
			Title("Organization Domain").
			Placeholder("example.com").
			Validate(required("organization domain")).
			Value(&v.TenantDomain),

		huh.NewInput().
			Key("password").
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&v.Password),

		huh.NewInput().
			Key("confirm_password").
			Title("Confirm Password").
			EchoMode(huh.EchoModePassword).
			Value(&v.ConfirmPassword),
	)
}
