package models

// RulesDescription is the static document served by /validation-rules/. The
// literals below are built from the validator constants so the advertised
// rules cannot drift from the enforced ones.
type RulesDescription struct {
	PasswordRules PasswordRules `json:"password_rules"`
	UsernameRules UsernameRules `json:"username_rules"`
	FullNameRules FullNameRules `json:"full_name_rules"`
}

type PasswordRules struct {
	MinLength           int  `json:"min_length"`
	RequiresUppercase   bool `json:"requires_uppercase"`
	RequiresLowercase   bool `json:"requires_lowercase"`
	RequiresNumber      bool `json:"requires_number"`
	RequiresSpecialChar bool `json:"requires_special_char"`
}

type UsernameRules struct {
	AlphanumericOnly bool `json:"alphanumeric_only"`
	MinLength        int  `json:"min_length"`
	MaxLength        int  `json:"max_length"`
}

type FullNameRules struct {
	AllowedCharacters string `json:"allowed_characters"`
	MinLength         int    `json:"min_length"`
	MaxLength         int    `json:"max_length"`
	Optional          bool   `json:"optional"`
}

// ValidationRules returns the rule set currently enforced by the validators.
func ValidationRules() RulesDescription {
	return RulesDescription{
		PasswordRules: PasswordRules{
			MinLength:           PasswordMinLength,
			RequiresUppercase:   true,
			RequiresLowercase:   true,
			RequiresNumber:      true,
			RequiresSpecialChar: true,
		},
		UsernameRules: UsernameRules{
			AlphanumericOnly: true,
			MinLength:        UsernameMinLength,
			MaxLength:        UsernameMaxLength,
		},
		FullNameRules: FullNameRules{
			AllowedCharacters: "letters, spaces, hyphens, apostrophes, periods",
			MinLength:         FullNameMinLength,
			MaxLength:         FullNameMaxLength,
			Optional:          true,
		},
	}
}

// ServiceDescription is the static document served at the root path.
type ServiceDescription struct {
	Message   string            `json:"message"`
	Endpoints map[string]string `json:"endpoints"`
}

// DescribeService lists the available operations and how to invoke them.
func DescribeService() ServiceDescription {
	return ServiceDescription{
		Message: "User registration validation demo",
		Endpoints: map[string]string{
			"create_user":      "POST /users/",
			"validation_rules": "GET /validation-rules/",
			"metrics":          "GET /metrics",
		},
	}
}
