package constants

const (
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"

	// Redis key prefix for refresh tokens: refresh_token:<token> -> member id
	RefreshTokenPrefix = "refresh_token:"
	RefreshScanCount   = 100

	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"

	// gin context keys set by the auth middleware
	ContextMemberID = "member_id"
	ContextEmail    = "email"
)
