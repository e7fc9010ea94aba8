package google

// DefaultOAuthScopes are the Google OAuth scopes letterdrive requests.
//
// The scopes provide access to:
//   - User profile and email (for the client to identify the signed-in user)
//   - Drive: files created or opened by this application only (drive.file)
//
// The narrow drive.file scope is deliberate: letterdrive can only see the
// folder and documents it created itself, never the user's whole Drive.
var DefaultOAuthScopes = []string{
	"https://www.googleapis.com/auth/userinfo.profile",
	"https://www.googleapis.com/auth/userinfo.email",
	"https://www.googleapis.com/auth/drive.file",
}
