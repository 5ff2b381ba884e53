// Package policy holds the access predicates for boards and everything
// nested under them. All predicates are pure functions over ids and are
// evaluated per request against freshly resolved relation state; results are
// never cached because membership can change between requests.
package policy

func IsBoardOwner(actorID, ownerID uint64) bool {
	return actorID == ownerID
}

// IsBoardMember reports whether the actor belongs to the board's visibility
// set. The owner is always a visibility holder, even when absent from the
// member list.
func IsBoardMember(actorID, ownerID uint64, memberIDs []uint64) bool {
	if actorID == ownerID {
		return true
	}
	for _, id := range memberIDs {
		if id == actorID {
			return true
		}
	}
	return false
}

func CanReadBoard(actorID, ownerID uint64, memberIDs []uint64) bool {
	return IsBoardMember(actorID, ownerID, memberIDs)
}

func CanUpdateBoard(actorID, ownerID uint64, memberIDs []uint64) bool {
	return IsBoardMember(actorID, ownerID, memberIDs)
}

func CanDeleteBoard(actorID, ownerID uint64) bool {
	return IsBoardOwner(actorID, ownerID)
}

// CanWriteTask covers task create, update and delete; all three require
// membership on the task's board.
func CanWriteTask(actorID, ownerID uint64, memberIDs []uint64) bool {
	return IsBoardMember(actorID, ownerID, memberIDs)
}

// CanReadComment derives membership transitively through task and board;
// comments carry no ACL of their own.
func CanReadComment(actorID, ownerID uint64, memberIDs []uint64) bool {
	return IsBoardMember(actorID, ownerID, memberIDs)
}

// CanDeleteComment is authorship-only: board members who did not write the
// comment cannot remove it.
func CanDeleteComment(actorID, authorID uint64) bool {
	return actorID == authorID
}
