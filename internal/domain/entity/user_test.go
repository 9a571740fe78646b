package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_Roles(t *testing.T) {
	tests := []struct {
		name string
		user User
		want Roles
	}{
		{
			name: "no profiles",
			user: User{},
			want: nil,
		},
		{
			name: "buyer only",
			user: User{BuyerProfile: &BuyerProfile{}},
			want: Roles{RoleBuyer},
		},
		{
			name: "seller only",
			user: User{SellerProfile: &SellerProfile{}},
			want: Roles{RoleSeller},
		},
		{
			name: "both roles",
			user: User{BuyerProfile: &BuyerProfile{}, SellerProfile: &SellerProfile{}},
			want: Roles{RoleBuyer, RoleSeller},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.user.Roles())
		})
	}
}

func TestRoles_Contains(t *testing.T) {
	roles := Roles{RoleBuyer}

	assert.True(t, roles.Contains(RoleBuyer))
	assert.False(t, roles.Contains(RoleSeller))
}

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleBuyer.IsValid())
	assert.True(t, RoleSeller.IsValid())
	assert.False(t, Role("admin").IsValid())
}
