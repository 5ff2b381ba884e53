package policy

import "testing"

func TestIsBoardMember(t *testing.T) {
	cases := []struct {
		name      string
		actorID   uint64
		ownerID   uint64
		memberIDs []uint64
		want      bool
	}{
		{"owner without member row", 1, 1, nil, true},
		{"listed member", 2, 1, []uint64{2, 3}, true},
		{"stranger", 4, 1, []uint64{2, 3}, false},
		{"empty member list non-owner", 2, 1, []uint64{}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsBoardMember(tc.actorID, tc.ownerID, tc.memberIDs); got != tc.want {
				t.Errorf("IsBoardMember(%d, %d, %v) = %v, want %v",
					tc.actorID, tc.ownerID, tc.memberIDs, got, tc.want)
			}
		})
	}
}

func TestReadUpdateWriteShareMembership(t *testing.T) {
	ownerID := uint64(1)
	members := []uint64{2}

	for _, actorID := range []uint64{1, 2} {
		if !CanReadBoard(actorID, ownerID, members) {
			t.Errorf("CanReadBoard(%d) = false, want true", actorID)
		}
		if !CanUpdateBoard(actorID, ownerID, members) {
			t.Errorf("CanUpdateBoard(%d) = false, want true", actorID)
		}
		if !CanWriteTask(actorID, ownerID, members) {
			t.Errorf("CanWriteTask(%d) = false, want true", actorID)
		}
		if !CanReadComment(actorID, ownerID, members) {
			t.Errorf("CanReadComment(%d) = false, want true", actorID)
		}
	}

	stranger := uint64(9)
	if CanReadBoard(stranger, ownerID, members) {
		t.Error("CanReadBoard(stranger) = true, want false")
	}
	if CanWriteTask(stranger, ownerID, members) {
		t.Error("CanWriteTask(stranger) = true, want false")
	}
}

func TestCanDeleteBoardIsOwnerOnly(t *testing.T) {
	if !CanDeleteBoard(1, 1) {
		t.Error("owner cannot delete own board")
	}
	if CanDeleteBoard(2, 1) {
		t.Error("non-owner can delete board")
	}
}

func TestCanDeleteCommentIsAuthorOnly(t *testing.T) {
	if !CanDeleteComment(5, 5) {
		t.Error("author cannot delete own comment")
	}
	if CanDeleteComment(6, 5) {
		t.Error("non-author can delete comment")
	}
}
