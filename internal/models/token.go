package models

// TokenDetails holds a signed access/refresh token pair together with the
// token UUIDs and expiry timestamps stored in the token repository.
type TokenDetails struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	AccessUUID   string `json:"-"` // Not exposed
	RefreshUUID  string `json:"-"` // Not exposed
	AtExpires    int64  `json:"at_expires"`
	RtExpires    int64  `json:"rt_expires"`
}
