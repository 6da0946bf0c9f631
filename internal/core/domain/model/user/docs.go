// Package user models the parties of the campus services system: students
// who request fulfillments, vendors who fulfill them, and the administrator.
//
// The package includes:
//   - Role: closed enumeration of admin, student and vendor
//   - VendorScope: the vendor class, canteen or print shop
//   - Actor: the trusted per-request identity tuple (id, role, vendor scope)
//     supplied by the identity collaborator; the core never re-authenticates it
//   - User: the stored account entity behind seeding and vendor lookups
package user
