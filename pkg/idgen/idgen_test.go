package idgen

import "testing"

func TestPublicIDRoundTrip(t *testing.T) {
	if err := InitSqidsEncoder(); err != nil {
		t.Fatalf("初始化编码器失败: %v", err)
	}

	tests := []struct {
		name       string
		dbID       uint
		entityType uint64
	}{
		{name: "workbasket", dbID: 1, entityType: EntityTypeWorkBasket},
		{name: "事务", dbID: 42, entityType: EntityTypeTransaction},
		{name: "版本组", dbID: 100000, entityType: EntityTypeVersionGroup},
		{name: "envelope 档案", dbID: 7, entityType: EntityTypeEnvelope},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publicID, err := GeneratePublicID(tt.dbID, tt.entityType)
			if err != nil {
				t.Fatalf("编码失败: %v", err)
			}
			if len(publicID) < 4 {
				t.Errorf("公共 ID 长度 %d 小于最小长度", len(publicID))
			}

			dbID, entityType, err := DecodePublicID(publicID)
			if err != nil {
				t.Fatalf("解码失败: %v", err)
			}
			if dbID != tt.dbID || entityType != tt.entityType {
				t.Errorf("解码结果 = (%d, %d), 期望 (%d, %d)", dbID, entityType, tt.dbID, tt.entityType)
			}
		})
	}
}

func TestDecodePublicIDBatch(t *testing.T) {
	if err := InitSqidsEncoder(); err != nil {
		t.Fatalf("初始化编码器失败: %v", err)
	}

	ids := []string{}
	for _, dbID := range []uint{1, 2, 3} {
		id, err := GeneratePublicID(dbID, EntityTypeTransaction)
		if err != nil {
			t.Fatalf("编码失败: %v", err)
		}
		ids = append(ids, id)
	}

	dbIDs, err := DecodePublicIDBatch(ids)
	if err != nil {
		t.Fatalf("批量解码失败: %v", err)
	}
	for i, want := range []uint{1, 2, 3} {
		if dbIDs[i] != want {
			t.Errorf("dbIDs[%d] = %d, 期望 %d", i, dbIDs[i], want)
		}
	}

	if got, err := DecodePublicIDBatch(nil); err != nil || got != nil {
		t.Errorf("nil 输入应返回 nil, got %v, %v", got, err)
	}

	if _, err := DecodePublicIDBatch([]string{"!!!"}); err == nil {
		t.Error("非法公共 ID 应报错")
	}
}

func TestEncoderNotInitialized(t *testing.T) {
	old := sqidsEncoder
	sqidsEncoder = nil
	defer func() { sqidsEncoder = old }()

	if _, err := GeneratePublicID(1, EntityTypeWorkBasket); err == nil {
		t.Error("未初始化时编码应报错")
	}
	if _, _, err := DecodePublicID("abcd"); err == nil {
		t.Error("未初始化时解码应报错")
	}
}
