package entity

// ChannelMeta 渠道的展示元数据
// 前端按渠道取图标和配色，这里统一成查表，避免各组件散落 switch
type ChannelMeta struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

var channelMetaTable = map[ChannelType]ChannelMeta{
	ChannelWhatsApp:  {Label: "WhatsApp", Icon: "message-circle", Color: "#25D366"},
	ChannelInstagram: {Label: "Instagram", Icon: "instagram", Color: "#E4405F"},
	ChannelFacebook:  {Label: "Facebook", Icon: "facebook", Color: "#1877F2"},
	ChannelEmail:     {Label: "E-mail", Icon: "mail", Color: "#6B7280"},
	ChannelPhone:     {Label: "Telefone", Icon: "phone", Color: "#0EA5E9"},
	ChannelWebsite:   {Label: "Site", Icon: "globe", Color: "#8B5CF6"},
}

// MetaOf 未知渠道回退到网站样式
func MetaOf(ch ChannelType) ChannelMeta {
	if m, ok := channelMetaTable[ch]; ok {
		return m
	}
	return channelMetaTable[ChannelWebsite]
}

// AllChannels 固定顺序的渠道列表
func AllChannels() []ChannelType {
	return []ChannelType{
		ChannelWhatsApp,
		ChannelInstagram,
		ChannelFacebook,
		ChannelEmail,
		ChannelPhone,
		ChannelWebsite,
	}
}

// ValidChannel 渠道枚举校验
func ValidChannel(ch ChannelType) bool {
	_, ok := channelMetaTable[ch]
	return ok
}
