package constants

const (
	// Rate limits (requests per minute) used when configuration leaves them unset
	GlobalAuthLimit  = 60  // Signup/Login/Refresh endpoints
	SharedTripLimit  = 120 // Public shared-trip lookups
	PlaceSearchLimit = 60  // Outbound Kakao searches per member
)
