// Package user models the staff accounts that authenticate against the order desk
// and the shop profile (name and avatar) attached to each account.
package user
