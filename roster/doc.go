// Package roster reads a guest graph from a YAML or JSON document.
//
// Document layout (YAML shown, JSON uses the same keys):
//
//	version: 1
//	people:
//	  - name: Anna
//	    gender: female
//	    best: true
//	    friends: [Boris, Clara]
//	  - name: Boris
//	    gender: male
//	    friends: [Anna]
//
// Every record is checked with guest.Validate. Cross-record rules (unique
// names, resolvable friend names) are left to the candidate index and the
// traversal engine, so a document can be loaded and inspected even when its
// friend lists are incomplete.
package roster
