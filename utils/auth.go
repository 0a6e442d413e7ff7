package utils

import (
	"slices"

	"github.com/bwmarrin/discordgo"

	"suggestbot/model"
)

// CanManage 检查成员是否有审核建议的权限
// Manage Server permission grants it, as does a configured admin role or
// developer ID.
func CanManage(member *discordgo.Member, auth model.Auth) bool {
	if member == nil || member.User == nil {
		return false
	}

	if member.Permissions&discordgo.PermissionManageServer != 0 {
		return true
	}

	// 检查是否为开发者
	if slices.Contains(auth.Developers, member.User.ID) {
		return true
	}

	// 检查是否拥有管理员角色
	for _, role := range member.Roles {
		if slices.Contains(auth.AdminsRoles, role) {
			return true
		}
	}

	return false
}
