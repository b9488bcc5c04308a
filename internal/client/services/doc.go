// Package services contains the application services behind the CLI:
// authentication and the session (AuthService), account administration
// (AccountService) and internal requests (RequestService).
//
// Services validate and mutate through the store and report policy
// rejections as the sentinel errors in package common; callers match them
// with errors.Is. Navigation is left to the caller.
package services
