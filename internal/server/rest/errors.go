package rest

import "github.com/gin-gonic/gin"

// Client-visible messages. Existing clients match on these strings.
const (
	msgNotLoggedIn        = "you must be logged in"
	msgValidatingUser     = "Error validating user"
	msgInvalidToken       = "Invalid token"
	msgMissingCredentials = "Must provide email and password"
	msgPasswordTooShort   = "Password must be at least 8 characters"
	msgPasswordTooLong    = "Password must be at most 72 characters"
	msgEmailTaken         = "Email already exists, Try again"
	msgEmailNotFound      = "Email not found"
	msgBadCredentials     = "Invalid email or password"
	msgNotSignedIn        = "Must be signed In"
	msgSignOutFailed      = "Error signing out"
	msgSignedOut          = "Successfully signed out"
	msgErrorFound         = "Error found"
	msgAlreadyOwned       = "Already owned!"
	msgGameNotFound       = "Game not found"
)

func abortWithError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}
