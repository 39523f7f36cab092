// Package access implements access-key (mnemonic) routing: mapping a typed
// character to registered elements, deciding which of several registrants
// actually receives the action, and running the Alt-key interaction state
// machine that shows and hides mnemonic hints and coordinates with the main
// menu.
//
// # Pieces
//
//   - Table: normalized key to weakly-held candidate elements, purged lazily.
//   - Resolver: turns the live candidates for a key press into the elements
//     that should actually be acted on, by asking each candidate for its
//     effective target through the routed resolve event.
//   - SortByHierarchy: groups each candidate with its logical descendants.
//   - Engine: picks exactly one target (or none) and raises the invoke
//     event, cycling through same-key candidates as they gain focus.
//   - Handler: the public surface and the Alt-key state machine.
//
// # Reentrancy
//
// Element resolve callbacks may register or unregister access keys while a
// key press is being resolved. The table therefore hands out purged
// snapshots under a guard and is never iterated live.
package access
