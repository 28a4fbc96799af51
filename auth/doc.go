// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth holds the identity side of a session and the admin key check.

# Admin Key

When ADMIN_KEY is configured, admin mutations require a matching X-Admin-Key
header:

	err := auth.ValidateAdminKey(r.Header.Get("X-Admin-Key"), cfg.AdminKey)

Both values are hashed with SHA-256 and compared with hmac.Equal so the
comparison takes constant time. An empty configured key disables the check.

# Identity

An Identity records how the user signed in (metamask or google), the linked
wallet address, and the Google profile if any:

	id := auth.SetAuth(auth.MethodMetaMask, address, nil)
	id, err := auth.GoogleSignIn(name, email, image, walletAddress)
	id = auth.Logout()

Google sign-in happens in the browser; the resulting profile is accepted as
given apart from a basic email check.

# Destinations

After sign-in the user is routed to one of two views:

	auth.Destination(auth.RoleAdmin) // "/admin"
	auth.Destination(auth.RoleVoter) // "/dashboard"
*/
package auth
