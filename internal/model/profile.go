package model

// Profile is the typed public profile derived from the siteSettings
// collection.
type Profile struct {
	Name      string `json:"name"`
	Title     string `json:"title"`
	Bio       string `json:"bio"`
	Email     string `json:"email"`
	GitHub    string `json:"github"`
	LinkedIn  string `json:"linkedin"`
	AvatarURL string `json:"avatarUrl"`
	ResumeURL string `json:"resumeUrl"`
}

// Setting keys recognized by the profile mapping. Unknown keys are ignored.
const (
	SettingKeyName      = "name"
	SettingKeyTitle     = "title"
	SettingKeyBio       = "bio"
	SettingKeyEmail     = "email"
	SettingKeyGitHub    = "github"
	SettingKeyLinkedIn  = "linkedin"
	SettingKeyAvatarURL = "avatar_url"
	SettingKeyResumeURL = "resume_url"
)

// DefaultProfile returns the profile served before any settings exist.
func DefaultProfile() *Profile {
	return &Profile{
		Name:  "Portfolio Owner",
		Title: "Software Developer",
		Bio:   "Welcome to my portfolio.",
	}
}

// ProfileFromSettings resolves the stored key/value settings into a typed
// profile. Fields without a stored value (or with an empty one) keep their
// defaults.
func ProfileFromSettings(settings []*Setting) *Profile {
	p := DefaultProfile()
	for _, s := range settings {
		if s.Value == "" {
			continue
		}
		switch s.Key {
		case SettingKeyName:
			p.Name = s.Value
		case SettingKeyTitle:
			p.Title = s.Value
		case SettingKeyBio:
			p.Bio = s.Value
		case SettingKeyEmail:
			p.Email = s.Value
		case SettingKeyGitHub:
			p.GitHub = s.Value
		case SettingKeyLinkedIn:
			p.LinkedIn = s.Value
		case SettingKeyAvatarURL:
			p.AvatarURL = s.Value
		case SettingKeyResumeURL:
			p.ResumeURL = s.Value
		}
	}
	return p
}
