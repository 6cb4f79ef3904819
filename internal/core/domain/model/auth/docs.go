// Package auth provides the Principal value object: the authenticated actor
// performing a request. A Principal carries an identity and an administrator
// flag and is passed explicitly through every core operation - there is no
// ambient authentication state inside the core. How a Principal is resolved
// from request credentials is an adapter concern.
package auth
