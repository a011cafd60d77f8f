package middleware

import "github.com/gin-gonic/gin"

// actorIDKey is the key used to store the authenticated actor's ID.
const actorIDKey = contextKey("actorID")

// GetActorIDFromContext retrieves the authenticated actor ID from the Gin
// context. It returns the ID and a boolean indicating if it was found.
func GetActorIDFromContext(c *gin.Context) (string, bool) {
	actorVal, exists := c.Get(string(actorIDKey))
	if !exists {
		// Check the request context as well; the auth middleware stores the
		// actor there for non-gin consumers.
		if v := c.Request.Context().Value(actorIDKey); v != nil {
			if actorID, ok := v.(string); ok {
				return actorID, true
			}
		}
		return "", false
	}

	actorID, ok := actorVal.(string)
	if !ok {
		return "", false
	}
	return actorID, true
}
