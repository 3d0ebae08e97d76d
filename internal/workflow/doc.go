// Package workflow drives one note creation end to end: fetch the
// catalog record, normalize it to the flat template schema, download
// artwork into the vault, render the note template, and write the note
// under the vault lock with a collision-free file name.
package workflow
