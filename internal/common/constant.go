package common

// SessionCookieName is the cookie that carries the signed session token.
// The name is part of the external contract and must not change.
const SessionCookieName = "auth"
