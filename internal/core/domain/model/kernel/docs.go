// Package kernel contains the shared value objects of the campus services
// domain: identifiers and money. These types are immutable, validated at
// construction, and safe for concurrent use. Domain packages build their
// aggregates on top of them instead of passing raw primitives around.
package kernel
