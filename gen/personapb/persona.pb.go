// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.5
// 	protoc        (unknown)
// source: persona.proto

package personapb

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Empty struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Empty) Reset() {
	*x = Empty{}
	mi := &file_persona_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Empty) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Empty) ProtoMessage() {}

func (x *Empty) ProtoReflect() protoreflect.Message {
	mi := &file_persona_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Empty.ProtoReflect.Descriptor instead.
func (*Empty) Descriptor() ([]byte, []int) {
	return file_persona_proto_rawDescGZIP(), []int{0}
}

type Traits struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Curiosity     float64                `protobuf:"fixed64,1,opt,name=curiosity,proto3" json:"curiosity,omitempty"`
	Balance       float64                `protobuf:"fixed64,2,opt,name=balance,proto3" json:"balance,omitempty"`
	Wit           float64                `protobuf:"fixed64,3,opt,name=wit,proto3" json:"wit,omitempty"`
	Candor        float64                `protobuf:"fixed64,4,opt,name=candor,proto3" json:"candor,omitempty"`
	Care          float64                `protobuf:"fixed64,5,opt,name=care,proto3" json:"care,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Traits) Reset() {
	*x = Traits{}
	mi := &file_persona_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Traits) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Traits) ProtoMessage() {}

func (x *Traits) ProtoReflect() protoreflect.Message {
	mi := &file_persona_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Traits.ProtoReflect.Descriptor instead.
func (*Traits) Descriptor() ([]byte, []int) {
	return file_persona_proto_rawDescGZIP(), []int{1}
}

func (x *Traits) GetCuriosity() float64 {
	if x != nil {
		return x.Curiosity
	}
	return 0
}

func (x *Traits) GetBalance() float64 {
	if x != nil {
		return x.Balance
	}
	return 0
}

func (x *Traits) GetWit() float64 {
	if x != nil {
		return x.Wit
	}
	return 0
}

func (x *Traits) GetCandor() float64 {
	if x != nil {
		return x.Candor
	}
	return 0
}

func (x *Traits) GetCare() float64 {
	if x != nil {
		return x.Care
	}
	return 0
}

type State struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ts            string                 `protobuf:"bytes,1,opt,name=ts,proto3" json:"ts,omitempty"` // RFC 3339
	Valence       float64                `protobuf:"fixed64,2,opt,name=valence,proto3" json:"valence,omitempty"`
	Arousal       float64                `protobuf:"fixed64,3,opt,name=arousal,proto3" json:"arousal,omitempty"`
	Fatigue       float64                `protobuf:"fixed64,4,opt,name=fatigue,proto3" json:"fatigue,omitempty"`
	Decay         float64                `protobuf:"fixed64,5,opt,name=decay,proto3" json:"decay,omitempty"`
	Tags          []string               `protobuf:"bytes,6,rep,name=tags,proto3" json:"tags,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *State) Reset() {
	*x = State{}
	mi := &file_persona_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *State) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*State) ProtoMessage() {}

func (x *State) ProtoReflect() protoreflect.Message {
	mi := &file_persona_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use State.ProtoReflect.Descriptor instead.
func (*State) Descriptor() ([]byte, []int) {
	return file_persona_proto_rawDescGZIP(), []int{2}
}

func (x *State) GetTs() string {
	if x != nil {
		return x.Ts
	}
	return ""
}

func (x *State) GetValence() float64 {
	if x != nil {
		return x.Valence
	}
	return 0
}

func (x *State) GetArousal() float64 {
	if x != nil {
		return x.Arousal
	}
	return 0
}

func (x *State) GetFatigue() float64 {
	if x != nil {
		return x.Fatigue
	}
	return 0
}

func (x *State) GetDecay() float64 {
	if x != nil {
		return x.Decay
	}
	return 0
}

func (x *State) GetTags() []string {
	if x != nil {
		return x.Tags
	}
	return nil
}

type Decoding struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Temp          float64                `protobuf:"fixed64,1,opt,name=temp,proto3" json:"temp,omitempty"`
	TopP          float64                `protobuf:"fixed64,2,opt,name=top_p,json=topP,proto3" json:"top_p,omitempty"`
	TopK          int32                  `protobuf:"varint,3,opt,name=top_k,json=topK,proto3" json:"top_k,omitempty"`
	Penalty       float64                `protobuf:"fixed64,4,opt,name=penalty,proto3" json:"penalty,omitempty"`
	MaxTokens     int32                  `protobuf:"varint,5,opt,name=max_tokens,json=maxTokens,proto3" json:"max_tokens,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Decoding) Reset() {
	*x = Decoding{}
	mi := &file_persona_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Decoding) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Decoding) ProtoMessage() {}

func (x *Decoding) ProtoReflect() protoreflect.Message {
	mi := &file_persona_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Decoding.ProtoReflect.Descriptor instead.
func (*Decoding) Descriptor() ([]byte, []int) {
	return file_persona_proto_rawDescGZIP(), []int{3}
}

func (x *Decoding) GetTemp() float64 {
	if x != nil {
		return x.Temp
	}
	return 0
}

func (x *Decoding) GetTopP() float64 {
	if x != nil {
		return x.TopP
	}
	return 0
}

func (x *Decoding) GetTopK() int32 {
	if x != nil {
		return x.TopK
	}
	return 0
}

func (x *Decoding) GetPenalty() float64 {
	if x != nil {
		return x.Penalty
	}
	return 0
}

func (x *Decoding) GetMaxTokens() int32 {
	if x != nil {
		return x.MaxTokens
	}
	return 0
}

type Style struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Warmth        float64                `protobuf:"fixed64,1,opt,name=warmth,proto3" json:"warmth,omitempty"`
	Formality     float64                `protobuf:"fixed64,2,opt,name=formality,proto3" json:"formality,omitempty"`
	Humor         float64                `protobuf:"fixed64,3,opt,name=humor,proto3" json:"humor,omitempty"`
	Flirtation    float64                `protobuf:"fixed64,4,opt,name=flirtation,proto3" json:"flirtation,omitempty"`
	SentenceLen   string                 `protobuf:"bytes,5,opt,name=sentence_len,json=sentenceLen,proto3" json:"sentence_len,omitempty"`
	Metaphor      float64                `protobuf:"fixed64,6,opt,name=metaphor,proto3" json:"metaphor,omitempty"`
	Expansiveness float64                `protobuf:"fixed64,7,opt,name=expansiveness,proto3" json:"expansiveness,omitempty"`
	Assertiveness float64                `protobuf:"fixed64,8,opt,name=assertiveness,proto3" json:"assertiveness,omitempty"`
	Nsfw          bool                   `protobuf:"varint,9,opt,name=nsfw,proto3" json:"nsfw,omitempty"`
	Sensitive     string                 `protobuf:"bytes,10,opt,name=sensitive,proto3" json:"sensitive,omitempty"`
	Decoding      *Decoding              `protobuf:"bytes,11,opt,name=decoding,proto3" json:"decoding,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Style) Reset() {
	*x = Style{}
	mi := &file_persona_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Style) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Style) ProtoMessage() {}

func (x *Style) ProtoReflect() protoreflect.Message {
	mi := &file_persona_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Style.ProtoReflect.Descriptor instead.
func (*Style) Descriptor() ([]byte, []int) {
	return file_persona_proto_rawDescGZIP(), []int{4}
}

func (x *Style) GetWarmth() float64 {
	if x != nil {
		return x.Warmth
	}
	return 0
}

func (x *Style) GetFormality() float64 {
	if x != nil {
		return x.Formality
	}
	return 0
}

func (x *Style) GetHumor() float64 {
	if x != nil {
		return x.Humor
	}
	return 0
}

func (x *Style) GetFlirtation() float64 {
	if x != nil {
		return x.Flirtation
	}
	return 0
}

func (x *Style) GetSentenceLen() string {
	if x != nil {
		return x.SentenceLen
	}
	return ""
}

func (x *Style) GetMetaphor() float64 {
	if x != nil {
		return x.Metaphor
	}
	return 0
}

func (x *Style) GetExpansiveness() float64 {
	if x != nil {
		return x.Expansiveness
	}
	return 0
}

func (x *Style) GetAssertiveness() float64 {
	if x != nil {
		return x.Assertiveness
	}
	return 0
}

func (x *Style) GetNsfw() bool {
	if x != nil {
		return x.Nsfw
	}
	return false
}

func (x *Style) GetSensitive() string {
	if x != nil {
		return x.Sensitive
	}
	return ""
}

func (x *Style) GetDecoding() *Decoding {
	if x != nil {
		return x.Decoding
	}
	return nil
}

type Boundaries struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MaxFlirtation float64                `protobuf:"fixed64,1,opt,name=max_flirtation,json=maxFlirtation,proto3" json:"max_flirtation,omitempty"`
	MaxHumor      float64                `protobuf:"fixed64,2,opt,name=max_humor,json=maxHumor,proto3" json:"max_humor,omitempty"`
	MaxCandor     float64                `protobuf:"fixed64,3,opt,name=max_candor,json=maxCandor,proto3" json:"max_candor,omitempty"`
	MinFormality  float64                `protobuf:"fixed64,4,opt,name=min_formality,json=minFormality,proto3" json:"min_formality,omitempty"`
	SafetyTags    []string               `protobuf:"bytes,5,rep,name=safety_tags,json=safetyTags,proto3" json:"safety_tags,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Boundaries) Reset() {
	*x = Boundaries{}
	mi := &file_persona_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Boundaries) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Boundaries) ProtoMessage() {}

func (x *Boundaries) ProtoReflect() protoreflect.Message {
	mi := &file_persona_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Boundaries.ProtoReflect.Descriptor instead.
func (*Boundaries) Descriptor() ([]byte, []int) {
	return file_persona_proto_rawDescGZIP(), []int{5}
}

func (x *Boundaries) GetMaxFlirtation() float64 {
	if x != nil {
		return x.MaxFlirtation
	}
	return 0
}

func (x *Boundaries) GetMaxHumor() float64 {
	if x != nil {
		return x.MaxHumor
	}
	return 0
}

func (x *Boundaries) GetMaxCandor() float64 {
	if x != nil {
		return x.MaxCandor
	}
	return 0
}

func (x *Boundaries) GetMinFormality() float64 {
	if x != nil {
		return x.MinFormality
	}
	return 0
}

func (x *Boundaries) GetSafetyTags() []string {
	if x != nil {
		return x.SafetyTags
	}
	return nil
}

type AudienceContext struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Name           string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Type           string                 `protobuf:"bytes,2,opt,name=type,proto3" json:"type,omitempty"`
	Role           string                 `protobuf:"bytes,3,opt,name=role,proto3" json:"role,omitempty"`
	Relationship   string                 `protobuf:"bytes,4,opt,name=relationship,proto3" json:"relationship,omitempty"`
	AgeGroup       string                 `protobuf:"bytes,5,opt,name=age_group,json=ageGroup,proto3" json:"age_group,omitempty"`
	ExpertiseLevel string                 `protobuf:"bytes,6,opt,name=expertise_level,json=expertiseLevel,proto3" json:"expertise_level,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *AudienceContext) Reset() {
	*x = AudienceContext{}
	mi := &file_persona_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AudienceContext) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AudienceContext) ProtoMessage() {}

func (x *AudienceContext) ProtoReflect() protoreflect.Message {
	mi := &file_persona_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AudienceContext.ProtoReflect.Descriptor instead.
func (*AudienceContext) Descriptor() ([]byte, []int) {
	return file_persona_proto_rawDescGZIP(), []int{6}
}

func (x *AudienceContext) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *AudienceContext) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *AudienceContext) GetRole() string {
	if x != nil {
		return x.Role
	}
	return ""
}

func (x *AudienceContext) GetRelationship() string {
	if x != nil {
		return x.Relationship
	}
	return ""
}

func (x *AudienceContext) GetAgeGroup() string {
	if x != nil {
		return x.AgeGroup
	}
	return ""
}

func (x *AudienceContext) GetExpertiseLevel() string {
	if x != nil {
		return x.ExpertiseLevel
	}
	return ""
}

type ChannelContext struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Type          string                 `protobuf:"bytes,1,opt,name=type,proto3" json:"type,omitempty"`
	Platform      string                 `protobuf:"bytes,2,opt,name=platform,proto3" json:"platform,omitempty"`
	IsPrivate     bool                   `protobuf:"varint,3,opt,name=is_private,json=isPrivate,proto3" json:"is_private,omitempty"`
	HasAudience   bool                   `protobuf:"varint,4,opt,name=has_audience,json=hasAudience,proto3" json:"has_audience,omitempty"`
	IsSynchronous bool                   `protobuf:"varint,5,opt,name=is_synchronous,json=isSynchronous,proto3" json:"is_synchronous,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ChannelContext) Reset() {
	*x = ChannelContext{}
	mi := &file_persona_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ChannelContext) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ChannelContext) ProtoMessage() {}

func (x *ChannelContext) ProtoReflect() protoreflect.Message {
	mi := &file_persona_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ChannelContext.ProtoReflect.Descriptor instead.
func (*ChannelContext) Descriptor() ([]byte, []int) {
	return file_persona_proto_rawDescGZIP(), []int{7}
}

func (x *ChannelContext) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *ChannelContext) GetPlatform() string {
	if x != nil {
		return x.Platform
	}
	return ""
}

func (x *ChannelContext) GetIsPrivate() bool {
	if x != nil {
		return x.IsPrivate
	}
	return false
}

func (x *ChannelContext) GetHasAudience() bool {
	if x != nil {
		return x.HasAudience
	}
	return false
}

func (x *ChannelContext) GetIsSynchronous() bool {
	if x != nil {
		return x.IsSynchronous
	}
	return false
}

type EventContext struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	ChildrenPresent bool                   `protobuf:"varint,1,opt,name=children_present,json=childrenPresent,proto3" json:"children_present,omitempty"`
	WorkContext     bool                   `protobuf:"varint,2,opt,name=work_context,json=workContext,proto3" json:"work_context,omitempty"`
	SocialContext   bool                   `protobuf:"varint,3,opt,name=social_context,json=socialContext,proto3" json:"social_context,omitempty"`
	LearningContext bool                   `protobuf:"varint,4,opt,name=learning_context,json=learningContext,proto3" json:"learning_context,omitempty"`
	CreativeContext bool                   `protobuf:"varint,5,opt,name=creative_context,json=creativeContext,proto3" json:"creative_context,omitempty"`
	SensitiveTopics []string               `protobuf:"bytes,6,rep,name=sensitive_topics,json=sensitiveTopics,proto3" json:"sensitive_topics,omitempty"`
	EmotionalState  string                 `protobuf:"bytes,7,opt,name=emotional_state,json=emotionalState,proto3" json:"emotional_state,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *EventContext) Reset() {
	*x = EventContext{}
	mi := &file_persona_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EventContext) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EventContext) ProtoMessage() {}

func (x *EventContext) ProtoReflect() protoreflect.Message {
	mi := &file_persona_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EventContext.ProtoReflect.Descriptor instead.
func (*EventContext) Descriptor() ([]byte, []int) {
	return file_persona_proto_rawDescGZIP(), []int{8}
}

func (x *EventContext) GetChildrenPresent() bool {
	if x != nil {
		return x.ChildrenPresent
	}
	return false
}

func (x *EventContext) GetWorkContext() bool {
	if x != nil {
		return x.WorkContext
	}
	return false
}

func (x *EventContext) GetSocialContext() bool {
	if x != nil {
		return x.SocialContext
	}
	return false
}

func (x *EventContext) GetLearningContext() bool {
	if x != nil {
		return x.LearningContext
	}
	return false
}

func (x *EventContext) GetCreativeContext() bool {
	if x != nil {
		return x.CreativeContext
	}
	return false
}

func (x *EventContext) GetSensitiveTopics() []string {
	if x != nil {
		return x.SensitiveTopics
	}
	return nil
}

func (x *EventContext) GetEmotionalState() string {
	if x != nil {
		return x.EmotionalState
	}
	return ""
}

type ApplyEventRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EventType     string                 `protobuf:"bytes,1,opt,name=event_type,json=eventType,proto3" json:"event_type,omitempty"`
	Intensity     float64                `protobuf:"fixed64,2,opt,name=intensity,proto3" json:"intensity,omitempty"`
	Audience      *AudienceContext       `protobuf:"bytes,3,opt,name=audience,proto3" json:"audience,omitempty"`
	Channel       *ChannelContext        `protobuf:"bytes,4,opt,name=channel,proto3" json:"channel,omitempty"`
	Context       *EventContext          `protobuf:"bytes,5,opt,name=context,proto3" json:"context,omitempty"`
	Timestamp     string                 `protobuf:"bytes,6,opt,name=timestamp,proto3" json:"timestamp,omitempty"` // RFC 3339, optional
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ApplyEventRequest) Reset() {
	*x = ApplyEventRequest{}
	mi := &file_persona_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApplyEventRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApplyEventRequest) ProtoMessage() {}

func (x *ApplyEventRequest) ProtoReflect() protoreflect.Message {
	mi := &file_persona_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApplyEventRequest.ProtoReflect.Descriptor instead.
func (*ApplyEventRequest) Descriptor() ([]byte, []int) {
	return file_persona_proto_rawDescGZIP(), []int{9}
}

func (x *ApplyEventRequest) GetEventType() string {
	if x != nil {
		return x.EventType
	}
	return ""
}

func (x *ApplyEventRequest) GetIntensity() float64 {
	if x != nil {
		return x.Intensity
	}
	return 0
}

func (x *ApplyEventRequest) GetAudience() *AudienceContext {
	if x != nil {
		return x.Audience
	}
	return nil
}

func (x *ApplyEventRequest) GetChannel() *ChannelContext {
	if x != nil {
		return x.Channel
	}
	return nil
}

func (x *ApplyEventRequest) GetContext() *EventContext {
	if x != nil {
		return x.Context
	}
	return nil
}

func (x *ApplyEventRequest) GetTimestamp() string {
	if x != nil {
		return x.Timestamp
	}
	return ""
}

type ApplyEventResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	State          *State                 `protobuf:"bytes,1,opt,name=state,proto3" json:"state,omitempty"`
	Style          *Style                 `protobuf:"bytes,2,opt,name=style,proto3" json:"style,omitempty"`
	Boundaries     *Boundaries            `protobuf:"bytes,3,opt,name=boundaries,proto3" json:"boundaries,omitempty"`
	DriftDetected  bool                   `protobuf:"varint,4,opt,name=drift_detected,json=driftDetected,proto3" json:"drift_detected,omitempty"`
	DriftMagnitude float64                `protobuf:"fixed64,5,opt,name=drift_magnitude,json=driftMagnitude,proto3" json:"drift_magnitude,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ApplyEventResponse) Reset() {
	*x = ApplyEventResponse{}
	mi := &file_persona_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApplyEventResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApplyEventResponse) ProtoMessage() {}

func (x *ApplyEventResponse) ProtoReflect() protoreflect.Message {
	mi := &file_persona_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApplyEventResponse.ProtoReflect.Descriptor instead.
func (*ApplyEventResponse) Descriptor() ([]byte, []int) {
	return file_persona_proto_rawDescGZIP(), []int{10}
}

func (x *ApplyEventResponse) GetState() *State {
	if x != nil {
		return x.State
	}
	return nil
}

func (x *ApplyEventResponse) GetStyle() *Style {
	if x != nil {
		return x.Style
	}
	return nil
}

func (x *ApplyEventResponse) GetBoundaries() *Boundaries {
	if x != nil {
		return x.Boundaries
	}
	return nil
}

func (x *ApplyEventResponse) GetDriftDetected() bool {
	if x != nil {
		return x.DriftDetected
	}
	return false
}

func (x *ApplyEventResponse) GetDriftMagnitude() float64 {
	if x != nil {
		return x.DriftMagnitude
	}
	return 0
}

type SummaryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SummaryJson   string                 `protobuf:"bytes,1,opt,name=summary_json,json=summaryJson,proto3" json:"summary_json,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SummaryResponse) Reset() {
	*x = SummaryResponse{}
	mi := &file_persona_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SummaryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SummaryResponse) ProtoMessage() {}

func (x *SummaryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_persona_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SummaryResponse.ProtoReflect.Descriptor instead.
func (*SummaryResponse) Descriptor() ([]byte, []int) {
	return file_persona_proto_rawDescGZIP(), []int{11}
}

func (x *SummaryResponse) GetSummaryJson() string {
	if x != nil {
		return x.SummaryJson
	}
	return ""
}

type Snapshot struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SnapshotJson  string                 `protobuf:"bytes,1,opt,name=snapshot_json,json=snapshotJson,proto3" json:"snapshot_json,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Snapshot) Reset() {
	*x = Snapshot{}
	mi := &file_persona_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Snapshot) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Snapshot) ProtoMessage() {}

func (x *Snapshot) ProtoReflect() protoreflect.Message {
	mi := &file_persona_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Snapshot.ProtoReflect.Descriptor instead.
func (*Snapshot) Descriptor() ([]byte, []int) {
	return file_persona_proto_rawDescGZIP(), []int{12}
}

func (x *Snapshot) GetSnapshotJson() string {
	if x != nil {
		return x.SnapshotJson
	}
	return ""
}

type SafetyRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Content       string                 `protobuf:"bytes,1,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SafetyRequest) Reset() {
	*x = SafetyRequest{}
	mi := &file_persona_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SafetyRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SafetyRequest) ProtoMessage() {}

func (x *SafetyRequest) ProtoReflect() protoreflect.Message {
	mi := &file_persona_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SafetyRequest.ProtoReflect.Descriptor instead.
func (*SafetyRequest) Descriptor() ([]byte, []int) {
	return file_persona_proto_rawDescGZIP(), []int{13}
}

func (x *SafetyRequest) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

type SafetyResponse struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Safe            bool                   `protobuf:"varint,1,opt,name=safe,proto3" json:"safe,omitempty"`
	RiskLevel       string                 `protobuf:"bytes,2,opt,name=risk_level,json=riskLevel,proto3" json:"risk_level,omitempty"`
	Violations      []string               `protobuf:"bytes,3,rep,name=violations,proto3" json:"violations,omitempty"`
	Recommendations []string               `protobuf:"bytes,4,rep,name=recommendations,proto3" json:"recommendations,omitempty"`
	IssuesJson      string                 `protobuf:"bytes,5,opt,name=issues_json,json=issuesJson,proto3" json:"issues_json,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *SafetyResponse) Reset() {
	*x = SafetyResponse{}
	mi := &file_persona_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SafetyResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SafetyResponse) ProtoMessage() {}

func (x *SafetyResponse) ProtoReflect() protoreflect.Message {
	mi := &file_persona_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SafetyResponse.ProtoReflect.Descriptor instead.
func (*SafetyResponse) Descriptor() ([]byte, []int) {
	return file_persona_proto_rawDescGZIP(), []int{14}
}

func (x *SafetyResponse) GetSafe() bool {
	if x != nil {
		return x.Safe
	}
	return false
}

func (x *SafetyResponse) GetRiskLevel() string {
	if x != nil {
		return x.RiskLevel
	}
	return ""
}

func (x *SafetyResponse) GetViolations() []string {
	if x != nil {
		return x.Violations
	}
	return nil
}

func (x *SafetyResponse) GetRecommendations() []string {
	if x != nil {
		return x.Recommendations
	}
	return nil
}

func (x *SafetyResponse) GetIssuesJson() string {
	if x != nil {
		return x.IssuesJson
	}
	return ""
}

type TraceQuery struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Limit         int32                  `protobuf:"varint,1,opt,name=limit,proto3" json:"limit,omitempty"`
	EventType     string                 `protobuf:"bytes,2,opt,name=event_type,json=eventType,proto3" json:"event_type,omitempty"` // empty for all
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TraceQuery) Reset() {
	*x = TraceQuery{}
	mi := &file_persona_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TraceQuery) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TraceQuery) ProtoMessage() {}

func (x *TraceQuery) ProtoReflect() protoreflect.Message {
	mi := &file_persona_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TraceQuery.ProtoReflect.Descriptor instead.
func (*TraceQuery) Descriptor() ([]byte, []int) {
	return file_persona_proto_rawDescGZIP(), []int{15}
}

func (x *TraceQuery) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

func (x *TraceQuery) GetEventType() string {
	if x != nil {
		return x.EventType
	}
	return ""
}

type TraceList struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TracesJson    []string               `protobuf:"bytes,1,rep,name=traces_json,json=tracesJson,proto3" json:"traces_json,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TraceList) Reset() {
	*x = TraceList{}
	mi := &file_persona_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TraceList) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TraceList) ProtoMessage() {}

func (x *TraceList) ProtoReflect() protoreflect.Message {
	mi := &file_persona_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TraceList.ProtoReflect.Descriptor instead.
func (*TraceList) Descriptor() ([]byte, []int) {
	return file_persona_proto_rawDescGZIP(), []int{16}
}

func (x *TraceList) GetTracesJson() []string {
	if x != nil {
		return x.TracesJson
	}
	return nil
}

type AlertQuery struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Limit         int32                  `protobuf:"varint,1,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AlertQuery) Reset() {
	*x = AlertQuery{}
	mi := &file_persona_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AlertQuery) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AlertQuery) ProtoMessage() {}

func (x *AlertQuery) ProtoReflect() protoreflect.Message {
	mi := &file_persona_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AlertQuery.ProtoReflect.Descriptor instead.
func (*AlertQuery) Descriptor() ([]byte, []int) {
	return file_persona_proto_rawDescGZIP(), []int{17}
}

func (x *AlertQuery) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type AlertList struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AlertsJson    []string               `protobuf:"bytes,1,rep,name=alerts_json,json=alertsJson,proto3" json:"alerts_json,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AlertList) Reset() {
	*x = AlertList{}
	mi := &file_persona_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AlertList) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AlertList) ProtoMessage() {}

func (x *AlertList) ProtoReflect() protoreflect.Message {
	mi := &file_persona_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AlertList.ProtoReflect.Descriptor instead.
func (*AlertList) Descriptor() ([]byte, []int) {
	return file_persona_proto_rawDescGZIP(), []int{18}
}

func (x *AlertList) GetAlertsJson() []string {
	if x != nil {
		return x.AlertsJson
	}
	return nil
}

type LensingRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Content       string                 `protobuf:"bytes,1,opt,name=content,proto3" json:"content,omitempty"`
	MemoryType    string                 `protobuf:"bytes,2,opt,name=memory_type,json=memoryType,proto3" json:"memory_type,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LensingRequest) Reset() {
	*x = LensingRequest{}
	mi := &file_persona_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LensingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LensingRequest) ProtoMessage() {}

func (x *LensingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_persona_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LensingRequest.ProtoReflect.Descriptor instead.
func (*LensingRequest) Descriptor() ([]byte, []int) {
	return file_persona_proto_rawDescGZIP(), []int{19}
}

func (x *LensingRequest) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

func (x *LensingRequest) GetMemoryType() string {
	if x != nil {
		return x.MemoryType
	}
	return ""
}

type LensingResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Lenses        map[string]float64     `protobuf:"bytes,1,rep,name=lenses,proto3" json:"lenses,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"fixed64,2,opt,name=value"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LensingResponse) Reset() {
	*x = LensingResponse{}
	mi := &file_persona_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LensingResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LensingResponse) ProtoMessage() {}

func (x *LensingResponse) ProtoReflect() protoreflect.Message {
	mi := &file_persona_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LensingResponse.ProtoReflect.Descriptor instead.
func (*LensingResponse) Descriptor() ([]byte, []int) {
	return file_persona_proto_rawDescGZIP(), []int{20}
}

func (x *LensingResponse) GetLenses() map[string]float64 {
	if x != nil {
		return x.Lenses
	}
	return nil
}

var File_persona_proto protoreflect.FileDescriptor

var file_persona_proto_rawDesc = string([]byte{
	0x0a, 0x0d, 0x70, 0x65, 0x72, 0x73, 0x6f, 0x6e, 0x61, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x12,
	0x07, 0x70, 0x65, 0x72, 0x73, 0x6f, 0x6e, 0x61, 0x22, 0x07, 0x0a, 0x05, 0x45, 0x6d, 0x70, 0x74,
	0x79, 0x22, 0x7e, 0x0a, 0x06, 0x54, 0x72, 0x61, 0x69, 0x74, 0x73, 0x12, 0x1c, 0x0a, 0x09, 0x63,
	0x75, 0x72, 0x69, 0x6f, 0x73, 0x69, 0x74, 0x79, 0x18, 0x01, 0x20, 0x01, 0x28, 0x01, 0x52, 0x09,
	0x63, 0x75, 0x72, 0x69, 0x6f, 0x73, 0x69, 0x74, 0x79, 0x12, 0x18, 0x0a, 0x07, 0x62, 0x61, 0x6c,
	0x61, 0x6e, 0x63, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x01, 0x52, 0x07, 0x62, 0x61, 0x6c, 0x61,
	0x6e, 0x63, 0x65, 0x12, 0x10, 0x0a, 0x03, 0x77, 0x69, 0x74, 0x18, 0x03, 0x20, 0x01, 0x28, 0x01,
	0x52, 0x03, 0x77, 0x69, 0x74, 0x12, 0x16, 0x0a, 0x06, 0x63, 0x61, 0x6e, 0x64, 0x6f, 0x72, 0x18,
	0x04, 0x20, 0x01, 0x28, 0x01, 0x52, 0x06, 0x63, 0x61, 0x6e, 0x64, 0x6f, 0x72, 0x12, 0x12, 0x0a,
	0x04, 0x63, 0x61, 0x72, 0x65, 0x18, 0x05, 0x20, 0x01, 0x28, 0x01, 0x52, 0x04, 0x63, 0x61, 0x72,
	0x65, 0x22, 0x8f, 0x01, 0x0a, 0x05, 0x53, 0x74, 0x61, 0x74, 0x65, 0x12, 0x0e, 0x0a, 0x02, 0x74,
	0x73, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x02, 0x74, 0x73, 0x12, 0x18, 0x0a, 0x07, 0x76,
	0x61, 0x6c, 0x65, 0x6e, 0x63, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x01, 0x52, 0x07, 0x76, 0x61,
	0x6c, 0x65, 0x6e, 0x63, 0x65, 0x12, 0x18, 0x0a, 0x07, 0x61, 0x72, 0x6f, 0x75, 0x73, 0x61, 0x6c,
	0x18, 0x03, 0x20, 0x01, 0x28, 0x01, 0x52, 0x07, 0x61, 0x72, 0x6f, 0x75, 0x73, 0x61, 0x6c, 0x12,
	0x18, 0x0a, 0x07, 0x66, 0x61, 0x74, 0x69, 0x67, 0x75, 0x65, 0x18, 0x04, 0x20, 0x01, 0x28, 0x01,
	0x52, 0x07, 0x66, 0x61, 0x74, 0x69, 0x67, 0x75, 0x65, 0x12, 0x14, 0x0a, 0x05, 0x64, 0x65, 0x63,
	0x61, 0x79, 0x18, 0x05, 0x20, 0x01, 0x28, 0x01, 0x52, 0x05, 0x64, 0x65, 0x63, 0x61, 0x79, 0x12,
	0x12, 0x0a, 0x04, 0x74, 0x61, 0x67, 0x73, 0x18, 0x06, 0x20, 0x03, 0x28, 0x09, 0x52, 0x04, 0x74,
	0x61, 0x67, 0x73, 0x22, 0x81, 0x01, 0x0a, 0x08, 0x44, 0x65, 0x63, 0x6f, 0x64, 0x69, 0x6e, 0x67,
	0x12, 0x12, 0x0a, 0x04, 0x74, 0x65, 0x6d, 0x70, 0x18, 0x01, 0x20, 0x01, 0x28, 0x01, 0x52, 0x04,
	0x74, 0x65, 0x6d, 0x70, 0x12, 0x13, 0x0a, 0x05, 0x74, 0x6f, 0x70, 0x5f, 0x70, 0x18, 0x02, 0x20,
	0x01, 0x28, 0x01, 0x52, 0x04, 0x74, 0x6f, 0x70, 0x50, 0x12, 0x13, 0x0a, 0x05, 0x74, 0x6f, 0x70,
	0x5f, 0x6b, 0x18, 0x03, 0x20, 0x01, 0x28, 0x05, 0x52, 0x04, 0x74, 0x6f, 0x70, 0x4b, 0x12, 0x18,
	0x0a, 0x07, 0x70, 0x65, 0x6e, 0x61, 0x6c, 0x74, 0x79, 0x18, 0x04, 0x20, 0x01, 0x28, 0x01, 0x52,
	0x07, 0x70, 0x65, 0x6e, 0x61, 0x6c, 0x74, 0x79, 0x12, 0x1d, 0x0a, 0x0a, 0x6d, 0x61, 0x78, 0x5f,
	0x74, 0x6f, 0x6b, 0x65, 0x6e, 0x73, 0x18, 0x05, 0x20, 0x01, 0x28, 0x05, 0x52, 0x09, 0x6d, 0x61,
	0x78, 0x54, 0x6f, 0x6b, 0x65, 0x6e, 0x73, 0x22, 0xdf, 0x02, 0x0a, 0x05, 0x53, 0x74, 0x79, 0x6c,
	0x65, 0x12, 0x16, 0x0a, 0x06, 0x77, 0x61, 0x72, 0x6d, 0x74, 0x68, 0x18, 0x01, 0x20, 0x01, 0x28,
	0x01, 0x52, 0x06, 0x77, 0x61, 0x72, 0x6d, 0x74, 0x68, 0x12, 0x1c, 0x0a, 0x09, 0x66, 0x6f, 0x72,
	0x6d, 0x61, 0x6c, 0x69, 0x74, 0x79, 0x18, 0x02, 0x20, 0x01, 0x28, 0x01, 0x52, 0x09, 0x66, 0x6f,
	0x72, 0x6d, 0x61, 0x6c, 0x69, 0x74, 0x79, 0x12, 0x14, 0x0a, 0x05, 0x68, 0x75, 0x6d, 0x6f, 0x72,
	0x18, 0x03, 0x20, 0x01, 0x28, 0x01, 0x52, 0x05, 0x68, 0x75, 0x6d, 0x6f, 0x72, 0x12, 0x1e, 0x0a,
	0x0a, 0x66, 0x6c, 0x69, 0x72, 0x74, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x18, 0x04, 0x20, 0x01, 0x28,
	0x01, 0x52, 0x0a, 0x66, 0x6c, 0x69, 0x72, 0x74, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x12, 0x21, 0x0a,
	0x0c, 0x73, 0x65, 0x6e, 0x74, 0x65, 0x6e, 0x63, 0x65, 0x5f, 0x6c, 0x65, 0x6e, 0x18, 0x05, 0x20,
	0x01, 0x28, 0x09, 0x52, 0x0b, 0x73, 0x65, 0x6e, 0x74, 0x65, 0x6e, 0x63, 0x65, 0x4c, 0x65, 0x6e,
	0x12, 0x1a, 0x0a, 0x08, 0x6d, 0x65, 0x74, 0x61, 0x70, 0x68, 0x6f, 0x72, 0x18, 0x06, 0x20, 0x01,
	0x28, 0x01, 0x52, 0x08, 0x6d, 0x65, 0x74, 0x61, 0x70, 0x68, 0x6f, 0x72, 0x12, 0x24, 0x0a, 0x0d,
	0x65, 0x78, 0x70, 0x61, 0x6e, 0x73, 0x69, 0x76, 0x65, 0x6e, 0x65, 0x73, 0x73, 0x18, 0x07, 0x20,
	0x01, 0x28, 0x01, 0x52, 0x0d, 0x65, 0x78, 0x70, 0x61, 0x6e, 0x73, 0x69, 0x76, 0x65, 0x6e, 0x65,
	0x73, 0x73, 0x12, 0x24, 0x0a, 0x0d, 0x61, 0x73, 0x73, 0x65, 0x72, 0x74, 0x69, 0x76, 0x65, 0x6e,
	0x65, 0x73, 0x73, 0x18, 0x08, 0x20, 0x01, 0x28, 0x01, 0x52, 0x0d, 0x61, 0x73, 0x73, 0x65, 0x72,
	0x74, 0x69, 0x76, 0x65, 0x6e, 0x65, 0x73, 0x73, 0x12, 0x12, 0x0a, 0x04, 0x6e, 0x73, 0x66, 0x77,
	0x18, 0x09, 0x20, 0x01, 0x28, 0x08, 0x52, 0x04, 0x6e, 0x73, 0x66, 0x77, 0x12, 0x1c, 0x0a, 0x09,
	0x73, 0x65, 0x6e, 0x73, 0x69, 0x74, 0x69, 0x76, 0x65, 0x18, 0x0a, 0x20, 0x01, 0x28, 0x09, 0x52,
	0x09, 0x73, 0x65, 0x6e, 0x73, 0x69, 0x74, 0x69, 0x76, 0x65, 0x12, 0x2d, 0x0a, 0x08, 0x64, 0x65,
	0x63, 0x6f, 0x64, 0x69, 0x6e, 0x67, 0x18, 0x0b, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x11, 0x2e, 0x70,
	0x65, 0x72, 0x73, 0x6f, 0x6e, 0x61, 0x2e, 0x44, 0x65, 0x63, 0x6f, 0x64, 0x69, 0x6e, 0x67, 0x52,
	0x08, 0x64, 0x65, 0x63, 0x6f, 0x64, 0x69, 0x6e, 0x67, 0x22, 0xb5, 0x01, 0x0a, 0x0a, 0x42, 0x6f,
	0x75, 0x6e, 0x64, 0x61, 0x72, 0x69, 0x65, 0x73, 0x12, 0x25, 0x0a, 0x0e, 0x6d, 0x61, 0x78, 0x5f,
	0x66, 0x6c, 0x69, 0x72, 0x74, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x18, 0x01, 0x20, 0x01, 0x28, 0x01,
	0x52, 0x0d, 0x6d, 0x61, 0x78, 0x46, 0x6c, 0x69, 0x72, 0x74, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x12,
	0x1b, 0x0a, 0x09, 0x6d, 0x61, 0x78, 0x5f, 0x68, 0x75, 0x6d, 0x6f, 0x72, 0x18, 0x02, 0x20, 0x01,
	0x28, 0x01, 0x52, 0x08, 0x6d, 0x61, 0x78, 0x48, 0x75, 0x6d, 0x6f, 0x72, 0x12, 0x1d, 0x0a, 0x0a,
	0x6d, 0x61, 0x78, 0x5f, 0x63, 0x61, 0x6e, 0x64, 0x6f, 0x72, 0x18, 0x03, 0x20, 0x01, 0x28, 0x01,
	0x52, 0x09, 0x6d, 0x61, 0x78, 0x43, 0x61, 0x6e, 0x64, 0x6f, 0x72, 0x12, 0x23, 0x0a, 0x0d, 0x6d,
	0x69, 0x6e, 0x5f, 0x66, 0x6f, 0x72, 0x6d, 0x61, 0x6c, 0x69, 0x74, 0x79, 0x18, 0x04, 0x20, 0x01,
	0x28, 0x01, 0x52, 0x0c, 0x6d, 0x69, 0x6e, 0x46, 0x6f, 0x72, 0x6d, 0x61, 0x6c, 0x69, 0x74, 0x79,
	0x12, 0x1f, 0x0a, 0x0b, 0x73, 0x61, 0x66, 0x65, 0x74, 0x79, 0x5f, 0x74, 0x61, 0x67, 0x73, 0x18,
	0x05, 0x20, 0x03, 0x28, 0x09, 0x52, 0x0a, 0x73, 0x61, 0x66, 0x65, 0x74, 0x79, 0x54, 0x61, 0x67,
	0x73, 0x22, 0xb7, 0x01, 0x0a, 0x0f, 0x41, 0x75, 0x64, 0x69, 0x65, 0x6e, 0x63, 0x65, 0x43, 0x6f,
	0x6e, 0x74, 0x65, 0x78, 0x74, 0x12, 0x12, 0x0a, 0x04, 0x6e, 0x61, 0x6d, 0x65, 0x18, 0x01, 0x20,
	0x01, 0x28, 0x09, 0x52, 0x04, 0x6e, 0x61, 0x6d, 0x65, 0x12, 0x12, 0x0a, 0x04, 0x74, 0x79, 0x70,
	0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x04, 0x74, 0x79, 0x70, 0x65, 0x12, 0x12, 0x0a,
	0x04, 0x72, 0x6f, 0x6c, 0x65, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x04, 0x72, 0x6f, 0x6c,
	0x65, 0x12, 0x22, 0x0a, 0x0c, 0x72, 0x65, 0x6c, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x73, 0x68, 0x69,
	0x70, 0x18, 0x04, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0c, 0x72, 0x65, 0x6c, 0x61, 0x74, 0x69, 0x6f,
	0x6e, 0x73, 0x68, 0x69, 0x70, 0x12, 0x1b, 0x0a, 0x09, 0x61, 0x67, 0x65, 0x5f, 0x67, 0x72, 0x6f,
	0x75, 0x70, 0x18, 0x05, 0x20, 0x01, 0x28, 0x09, 0x52, 0x08, 0x61, 0x67, 0x65, 0x47, 0x72, 0x6f,
	0x75, 0x70, 0x12, 0x27, 0x0a, 0x0f, 0x65, 0x78, 0x70, 0x65, 0x72, 0x74, 0x69, 0x73, 0x65, 0x5f,
	0x6c, 0x65, 0x76, 0x65, 0x6c, 0x18, 0x06, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0e, 0x65, 0x78, 0x70,
	0x65, 0x72, 0x74, 0x69, 0x73, 0x65, 0x4c, 0x65, 0x76, 0x65, 0x6c, 0x22, 0xa9, 0x01, 0x0a, 0x0e,
	0x43, 0x68, 0x61, 0x6e, 0x6e, 0x65, 0x6c, 0x43, 0x6f, 0x6e, 0x74, 0x65, 0x78, 0x74, 0x12, 0x12,
	0x0a, 0x04, 0x74, 0x79, 0x70, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x04, 0x74, 0x79,
	0x70, 0x65, 0x12, 0x1a, 0x0a, 0x08, 0x70, 0x6c, 0x61, 0x74, 0x66, 0x6f, 0x72, 0x6d, 0x18, 0x02,
	0x20, 0x01, 0x28, 0x09, 0x52, 0x08, 0x70, 0x6c, 0x61, 0x74, 0x66, 0x6f, 0x72, 0x6d, 0x12, 0x1d,
	0x0a, 0x0a, 0x69, 0x73, 0x5f, 0x70, 0x72, 0x69, 0x76, 0x61, 0x74, 0x65, 0x18, 0x03, 0x20, 0x01,
	0x28, 0x08, 0x52, 0x09, 0x69, 0x73, 0x50, 0x72, 0x69, 0x76, 0x61, 0x74, 0x65, 0x12, 0x21, 0x0a,
	0x0c, 0x68, 0x61, 0x73, 0x5f, 0x61, 0x75, 0x64, 0x69, 0x65, 0x6e, 0x63, 0x65, 0x18, 0x04, 0x20,
	0x01, 0x28, 0x08, 0x52, 0x0b, 0x68, 0x61, 0x73, 0x41, 0x75, 0x64, 0x69, 0x65, 0x6e, 0x63, 0x65,
	0x12, 0x25, 0x0a, 0x0e, 0x69, 0x73, 0x5f, 0x73, 0x79, 0x6e, 0x63, 0x68, 0x72, 0x6f, 0x6e, 0x6f,
	0x75, 0x73, 0x18, 0x05, 0x20, 0x01, 0x28, 0x08, 0x52, 0x0d, 0x69, 0x73, 0x53, 0x79, 0x6e, 0x63,
	0x68, 0x72, 0x6f, 0x6e, 0x6f, 0x75, 0x73, 0x22, 0xad, 0x02, 0x0a, 0x0c, 0x45, 0x76, 0x65, 0x6e,
	0x74, 0x43, 0x6f, 0x6e, 0x74, 0x65, 0x78, 0x74, 0x12, 0x29, 0x0a, 0x10, 0x63, 0x68, 0x69, 0x6c,
	0x64, 0x72, 0x65, 0x6e, 0x5f, 0x70, 0x72, 0x65, 0x73, 0x65, 0x6e, 0x74, 0x18, 0x01, 0x20, 0x01,
	0x28, 0x08, 0x52, 0x0f, 0x63, 0x68, 0x69, 0x6c, 0x64, 0x72, 0x65, 0x6e, 0x50, 0x72, 0x65, 0x73,
	0x65, 0x6e, 0x74, 0x12, 0x21, 0x0a, 0x0c, 0x77, 0x6f, 0x72, 0x6b, 0x5f, 0x63, 0x6f, 0x6e, 0x74,
	0x65, 0x78, 0x74, 0x18, 0x02, 0x20, 0x01, 0x28, 0x08, 0x52, 0x0b, 0x77, 0x6f, 0x72, 0x6b, 0x43,
	0x6f, 0x6e, 0x74, 0x65, 0x78, 0x74, 0x12, 0x25, 0x0a, 0x0e, 0x73, 0x6f, 0x63, 0x69, 0x61, 0x6c,
	0x5f, 0x63, 0x6f, 0x6e, 0x74, 0x65, 0x78, 0x74, 0x18, 0x03, 0x20, 0x01, 0x28, 0x08, 0x52, 0x0d,
	0x73, 0x6f, 0x63, 0x69, 0x61, 0x6c, 0x43, 0x6f, 0x6e, 0x74, 0x65, 0x78, 0x74, 0x12, 0x29, 0x0a,
	0x10, 0x6c, 0x65, 0x61, 0x72, 0x6e, 0x69, 0x6e, 0x67, 0x5f, 0x63, 0x6f, 0x6e, 0x74, 0x65, 0x78,
	0x74, 0x18, 0x04, 0x20, 0x01, 0x28, 0x08, 0x52, 0x0f, 0x6c, 0x65, 0x61, 0x72, 0x6e, 0x69, 0x6e,
	0x67, 0x43, 0x6f, 0x6e, 0x74, 0x65, 0x78, 0x74, 0x12, 0x29, 0x0a, 0x10, 0x63, 0x72, 0x65, 0x61,
	0x74, 0x69, 0x76, 0x65, 0x5f, 0x63, 0x6f, 0x6e, 0x74, 0x65, 0x78, 0x74, 0x18, 0x05, 0x20, 0x01,
	0x28, 0x08, 0x52, 0x0f, 0x63, 0x72, 0x65, 0x61, 0x74, 0x69, 0x76, 0x65, 0x43, 0x6f, 0x6e, 0x74,
	0x65, 0x78, 0x74, 0x12, 0x29, 0x0a, 0x10, 0x73, 0x65, 0x6e, 0x73, 0x69, 0x74, 0x69, 0x76, 0x65,
	0x5f, 0x74, 0x6f, 0x70, 0x69, 0x63, 0x73, 0x18, 0x06, 0x20, 0x03, 0x28, 0x09, 0x52, 0x0f, 0x73,
	0x65, 0x6e, 0x73, 0x69, 0x74, 0x69, 0x76, 0x65, 0x54, 0x6f, 0x70, 0x69, 0x63, 0x73, 0x12, 0x27,
	0x0a, 0x0f, 0x65, 0x6d, 0x6f, 0x74, 0x69, 0x6f, 0x6e, 0x61, 0x6c, 0x5f, 0x73, 0x74, 0x61, 0x74,
	0x65, 0x18, 0x07, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0e, 0x65, 0x6d, 0x6f, 0x74, 0x69, 0x6f, 0x6e,
	0x61, 0x6c, 0x53, 0x74, 0x61, 0x74, 0x65, 0x22, 0x88, 0x02, 0x0a, 0x11, 0x41, 0x70, 0x70, 0x6c,
	0x79, 0x45, 0x76, 0x65, 0x6e, 0x74, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x1d, 0x0a,
	0x0a, 0x65, 0x76, 0x65, 0x6e, 0x74, 0x5f, 0x74, 0x79, 0x70, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x09, 0x65, 0x76, 0x65, 0x6e, 0x74, 0x54, 0x79, 0x70, 0x65, 0x12, 0x1c, 0x0a, 0x09,
	0x69, 0x6e, 0x74, 0x65, 0x6e, 0x73, 0x69, 0x74, 0x79, 0x18, 0x02, 0x20, 0x01, 0x28, 0x01, 0x52,
	0x09, 0x69, 0x6e, 0x74, 0x65, 0x6e, 0x73, 0x69, 0x74, 0x79, 0x12, 0x34, 0x0a, 0x08, 0x61, 0x75,
	0x64, 0x69, 0x65, 0x6e, 0x63, 0x65, 0x18, 0x03, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x18, 0x2e, 0x70,
	0x65, 0x72, 0x73, 0x6f, 0x6e, 0x61, 0x2e, 0x41, 0x75, 0x64, 0x69, 0x65, 0x6e, 0x63, 0x65, 0x43,
	0x6f, 0x6e, 0x74, 0x65, 0x78, 0x74, 0x52, 0x08, 0x61, 0x75, 0x64, 0x69, 0x65, 0x6e, 0x63, 0x65,
	0x12, 0x31, 0x0a, 0x07, 0x63, 0x68, 0x61, 0x6e, 0x6e, 0x65, 0x6c, 0x18, 0x04, 0x20, 0x01, 0x28,
	0x0b, 0x32, 0x17, 0x2e, 0x70, 0x65, 0x72, 0x73, 0x6f, 0x6e, 0x61, 0x2e, 0x43, 0x68, 0x61, 0x6e,
	0x6e, 0x65, 0x6c, 0x43, 0x6f, 0x6e, 0x74, 0x65, 0x78, 0x74, 0x52, 0x07, 0x63, 0x68, 0x61, 0x6e,
	0x6e, 0x65, 0x6c, 0x12, 0x2f, 0x0a, 0x07, 0x63, 0x6f, 0x6e, 0x74, 0x65, 0x78, 0x74, 0x18, 0x05,
	0x20, 0x01, 0x28, 0x0b, 0x32, 0x15, 0x2e, 0x70, 0x65, 0x72, 0x73, 0x6f, 0x6e, 0x61, 0x2e, 0x45,
	0x76, 0x65, 0x6e, 0x74, 0x43, 0x6f, 0x6e, 0x74, 0x65, 0x78, 0x74, 0x52, 0x07, 0x63, 0x6f, 0x6e,
	0x74, 0x65, 0x78, 0x74, 0x12, 0x1c, 0x0a, 0x09, 0x74, 0x69, 0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d,
	0x70, 0x18, 0x06, 0x20, 0x01, 0x28, 0x09, 0x52, 0x09, 0x74, 0x69, 0x6d, 0x65, 0x73, 0x74, 0x61,
	0x6d, 0x70, 0x22, 0xe5, 0x01, 0x0a, 0x12, 0x41, 0x70, 0x70, 0x6c, 0x79, 0x45, 0x76, 0x65, 0x6e,
	0x74, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x24, 0x0a, 0x05, 0x73, 0x74, 0x61,
	0x74, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x0e, 0x2e, 0x70, 0x65, 0x72, 0x73, 0x6f,
	0x6e, 0x61, 0x2e, 0x53, 0x74, 0x61, 0x74, 0x65, 0x52, 0x05, 0x73, 0x74, 0x61, 0x74, 0x65, 0x12,
	0x24, 0x0a, 0x05, 0x73, 0x74, 0x79, 0x6c, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x0e,
	0x2e, 0x70, 0x65, 0x72, 0x73, 0x6f, 0x6e, 0x61, 0x2e, 0x53, 0x74, 0x79, 0x6c, 0x65, 0x52, 0x05,
	0x73, 0x74, 0x79, 0x6c, 0x65, 0x12, 0x33, 0x0a, 0x0a, 0x62, 0x6f, 0x75, 0x6e, 0x64, 0x61, 0x72,
	0x69, 0x65, 0x73, 0x18, 0x03, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x13, 0x2e, 0x70, 0x65, 0x72, 0x73,
	0x6f, 0x6e, 0x61, 0x2e, 0x42, 0x6f, 0x75, 0x6e, 0x64, 0x61, 0x72, 0x69, 0x65, 0x73, 0x52, 0x0a,
	0x62, 0x6f, 0x75, 0x6e, 0x64, 0x61, 0x72, 0x69, 0x65, 0x73, 0x12, 0x25, 0x0a, 0x0e, 0x64, 0x72,
	0x69, 0x66, 0x74, 0x5f, 0x64, 0x65, 0x74, 0x65, 0x63, 0x74, 0x65, 0x64, 0x18, 0x04, 0x20, 0x01,
	0x28, 0x08, 0x52, 0x0d, 0x64, 0x72, 0x69, 0x66, 0x74, 0x44, 0x65, 0x74, 0x65, 0x63, 0x74, 0x65,
	0x64, 0x12, 0x27, 0x0a, 0x0f, 0x64, 0x72, 0x69, 0x66, 0x74, 0x5f, 0x6d, 0x61, 0x67, 0x6e, 0x69,
	0x74, 0x75, 0x64, 0x65, 0x18, 0x05, 0x20, 0x01, 0x28, 0x01, 0x52, 0x0e, 0x64, 0x72, 0x69, 0x66,
	0x74, 0x4d, 0x61, 0x67, 0x6e, 0x69, 0x74, 0x75, 0x64, 0x65, 0x22, 0x34, 0x0a, 0x0f, 0x53, 0x75,
	0x6d, 0x6d, 0x61, 0x72, 0x79, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x21, 0x0a,
	0x0c, 0x73, 0x75, 0x6d, 0x6d, 0x61, 0x72, 0x79, 0x5f, 0x6a, 0x73, 0x6f, 0x6e, 0x18, 0x01, 0x20,
	0x01, 0x28, 0x09, 0x52, 0x0b, 0x73, 0x75, 0x6d, 0x6d, 0x61, 0x72, 0x79, 0x4a, 0x73, 0x6f, 0x6e,
	0x22, 0x2f, 0x0a, 0x08, 0x53, 0x6e, 0x61, 0x70, 0x73, 0x68, 0x6f, 0x74, 0x12, 0x23, 0x0a, 0x0d,
	0x73, 0x6e, 0x61, 0x70, 0x73, 0x68, 0x6f, 0x74, 0x5f, 0x6a, 0x73, 0x6f, 0x6e, 0x18, 0x01, 0x20,
	0x01, 0x28, 0x09, 0x52, 0x0c, 0x73, 0x6e, 0x61, 0x70, 0x73, 0x68, 0x6f, 0x74, 0x4a, 0x73, 0x6f,
	0x6e, 0x22, 0x29, 0x0a, 0x0d, 0x53, 0x61, 0x66, 0x65, 0x74, 0x79, 0x52, 0x65, 0x71, 0x75, 0x65,
	0x73, 0x74, 0x12, 0x18, 0x0a, 0x07, 0x63, 0x6f, 0x6e, 0x74, 0x65, 0x6e, 0x74, 0x18, 0x01, 0x20,
	0x01, 0x28, 0x09, 0x52, 0x07, 0x63, 0x6f, 0x6e, 0x74, 0x65, 0x6e, 0x74, 0x22, 0xae, 0x01, 0x0a,
	0x0e, 0x53, 0x61, 0x66, 0x65, 0x74, 0x79, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12,
	0x12, 0x0a, 0x04, 0x73, 0x61, 0x66, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x08, 0x52, 0x04, 0x73,
	0x61, 0x66, 0x65, 0x12, 0x1d, 0x0a, 0x0a, 0x72, 0x69, 0x73, 0x6b, 0x5f, 0x6c, 0x65, 0x76, 0x65,
	0x6c, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x09, 0x72, 0x69, 0x73, 0x6b, 0x4c, 0x65, 0x76,
	0x65, 0x6c, 0x12, 0x1e, 0x0a, 0x0a, 0x76, 0x69, 0x6f, 0x6c, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x73,
	0x18, 0x03, 0x20, 0x03, 0x28, 0x09, 0x52, 0x0a, 0x76, 0x69, 0x6f, 0x6c, 0x61, 0x74, 0x69, 0x6f,
	0x6e, 0x73, 0x12, 0x28, 0x0a, 0x0f, 0x72, 0x65, 0x63, 0x6f, 0x6d, 0x6d, 0x65, 0x6e, 0x64, 0x61,
	0x74, 0x69, 0x6f, 0x6e, 0x73, 0x18, 0x04, 0x20, 0x03, 0x28, 0x09, 0x52, 0x0f, 0x72, 0x65, 0x63,
	0x6f, 0x6d, 0x6d, 0x65, 0x6e, 0x64, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x73, 0x12, 0x1f, 0x0a, 0x0b,
	0x69, 0x73, 0x73, 0x75, 0x65, 0x73, 0x5f, 0x6a, 0x73, 0x6f, 0x6e, 0x18, 0x05, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x0a, 0x69, 0x73, 0x73, 0x75, 0x65, 0x73, 0x4a, 0x73, 0x6f, 0x6e, 0x22, 0x41, 0x0a,
	0x0a, 0x54, 0x72, 0x61, 0x63, 0x65, 0x51, 0x75, 0x65, 0x72, 0x79, 0x12, 0x14, 0x0a, 0x05, 0x6c,
	0x69, 0x6d, 0x69, 0x74, 0x18, 0x01, 0x20, 0x01, 0x28, 0x05, 0x52, 0x05, 0x6c, 0x69, 0x6d, 0x69,
	0x74, 0x12, 0x1d, 0x0a, 0x0a, 0x65, 0x76, 0x65, 0x6e, 0x74, 0x5f, 0x74, 0x79, 0x70, 0x65, 0x18,
	0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x09, 0x65, 0x76, 0x65, 0x6e, 0x74, 0x54, 0x79, 0x70, 0x65,
	0x22, 0x2c, 0x0a, 0x09, 0x54, 0x72, 0x61, 0x63, 0x65, 0x4c, 0x69, 0x73, 0x74, 0x12, 0x1f, 0x0a,
	0x0b, 0x74, 0x72, 0x61, 0x63, 0x65, 0x73, 0x5f, 0x6a, 0x73, 0x6f, 0x6e, 0x18, 0x01, 0x20, 0x03,
	0x28, 0x09, 0x52, 0x0a, 0x74, 0x72, 0x61, 0x63, 0x65, 0x73, 0x4a, 0x73, 0x6f, 0x6e, 0x22, 0x22,
	0x0a, 0x0a, 0x41, 0x6c, 0x65, 0x72, 0x74, 0x51, 0x75, 0x65, 0x72, 0x79, 0x12, 0x14, 0x0a, 0x05,
	0x6c, 0x69, 0x6d, 0x69, 0x74, 0x18, 0x01, 0x20, 0x01, 0x28, 0x05, 0x52, 0x05, 0x6c, 0x69, 0x6d,
	0x69, 0x74, 0x22, 0x2c, 0x0a, 0x09, 0x41, 0x6c, 0x65, 0x72, 0x74, 0x4c, 0x69, 0x73, 0x74, 0x12,
	0x1f, 0x0a, 0x0b, 0x61, 0x6c, 0x65, 0x72, 0x74, 0x73, 0x5f, 0x6a, 0x73, 0x6f, 0x6e, 0x18, 0x01,
	0x20, 0x03, 0x28, 0x09, 0x52, 0x0a, 0x61, 0x6c, 0x65, 0x72, 0x74, 0x73, 0x4a, 0x73, 0x6f, 0x6e,
	0x22, 0x4b, 0x0a, 0x0e, 0x4c, 0x65, 0x6e, 0x73, 0x69, 0x6e, 0x67, 0x52, 0x65, 0x71, 0x75, 0x65,
	0x73, 0x74, 0x12, 0x18, 0x0a, 0x07, 0x63, 0x6f, 0x6e, 0x74, 0x65, 0x6e, 0x74, 0x18, 0x01, 0x20,
	0x01, 0x28, 0x09, 0x52, 0x07, 0x63, 0x6f, 0x6e, 0x74, 0x65, 0x6e, 0x74, 0x12, 0x1f, 0x0a, 0x0b,
	0x6d, 0x65, 0x6d, 0x6f, 0x72, 0x79, 0x5f, 0x74, 0x79, 0x70, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x0a, 0x6d, 0x65, 0x6d, 0x6f, 0x72, 0x79, 0x54, 0x79, 0x70, 0x65, 0x22, 0x8a, 0x01,
	0x0a, 0x0f, 0x4c, 0x65, 0x6e, 0x73, 0x69, 0x6e, 0x67, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73,
	0x65, 0x12, 0x3c, 0x0a, 0x06, 0x6c, 0x65, 0x6e, 0x73, 0x65, 0x73, 0x18, 0x01, 0x20, 0x03, 0x28,
	0x0b, 0x32, 0x24, 0x2e, 0x70, 0x65, 0x72, 0x73, 0x6f, 0x6e, 0x61, 0x2e, 0x4c, 0x65, 0x6e, 0x73,
	0x69, 0x6e, 0x67, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x2e, 0x4c, 0x65, 0x6e, 0x73,
	0x65, 0x73, 0x45, 0x6e, 0x74, 0x72, 0x79, 0x52, 0x06, 0x6c, 0x65, 0x6e, 0x73, 0x65, 0x73, 0x1a,
	0x39, 0x0a, 0x0b, 0x4c, 0x65, 0x6e, 0x73, 0x65, 0x73, 0x45, 0x6e, 0x74, 0x72, 0x79, 0x12, 0x10,
	0x0a, 0x03, 0x6b, 0x65, 0x79, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x03, 0x6b, 0x65, 0x79,
	0x12, 0x14, 0x0a, 0x05, 0x76, 0x61, 0x6c, 0x75, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x01, 0x52,
	0x05, 0x76, 0x61, 0x6c, 0x75, 0x65, 0x3a, 0x02, 0x38, 0x01, 0x32, 0x95, 0x06, 0x0a, 0x0e, 0x50,
	0x65, 0x72, 0x73, 0x6f, 0x6e, 0x61, 0x53, 0x65, 0x72, 0x76, 0x69, 0x63, 0x65, 0x12, 0x45, 0x0a,
	0x0a, 0x41, 0x70, 0x70, 0x6c, 0x79, 0x45, 0x76, 0x65, 0x6e, 0x74, 0x12, 0x1a, 0x2e, 0x70, 0x65,
	0x72, 0x73, 0x6f, 0x6e, 0x61, 0x2e, 0x41, 0x70, 0x70, 0x6c, 0x79, 0x45, 0x76, 0x65, 0x6e, 0x74,
	0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x1b, 0x2e, 0x70, 0x65, 0x72, 0x73, 0x6f, 0x6e,
	0x61, 0x2e, 0x41, 0x70, 0x70, 0x6c, 0x79, 0x45, 0x76, 0x65, 0x6e, 0x74, 0x52, 0x65, 0x73, 0x70,
	0x6f, 0x6e, 0x73, 0x65, 0x12, 0x2c, 0x0a, 0x09, 0x47, 0x65, 0x74, 0x54, 0x72, 0x61, 0x69, 0x74,
	0x73, 0x12, 0x0e, 0x2e, 0x70, 0x65, 0x72, 0x73, 0x6f, 0x6e, 0x61, 0x2e, 0x45, 0x6d, 0x70, 0x74,
	0x79, 0x1a, 0x0f, 0x2e, 0x70, 0x65, 0x72, 0x73, 0x6f, 0x6e, 0x61, 0x2e, 0x54, 0x72, 0x61, 0x69,
	0x74, 0x73, 0x12, 0x2a, 0x0a, 0x08, 0x47, 0x65, 0x74, 0x53, 0x74, 0x61, 0x74, 0x65, 0x12, 0x0e,
	0x2e, 0x70, 0x65, 0x72, 0x73, 0x6f, 0x6e, 0x61, 0x2e, 0x45, 0x6d, 0x70, 0x74, 0x79, 0x1a, 0x0e,
	0x2e, 0x70, 0x65, 0x72, 0x73, 0x6f, 0x6e, 0x61, 0x2e, 0x53, 0x74, 0x61, 0x74, 0x65, 0x12, 0x2a,
	0x0a, 0x08, 0x47, 0x65, 0x74, 0x53, 0x74, 0x79, 0x6c, 0x65, 0x12, 0x0e, 0x2e, 0x70, 0x65, 0x72,
	0x73, 0x6f, 0x6e, 0x61, 0x2e, 0x45, 0x6d, 0x70, 0x74, 0x79, 0x1a, 0x0e, 0x2e, 0x70, 0x65, 0x72,
	0x73, 0x6f, 0x6e, 0x61, 0x2e, 0x53, 0x74, 0x79, 0x6c, 0x65, 0x12, 0x34, 0x0a, 0x0d, 0x47, 0x65,
	0x74, 0x42, 0x6f, 0x75, 0x6e, 0x64, 0x61, 0x72, 0x69, 0x65, 0x73, 0x12, 0x0e, 0x2e, 0x70, 0x65,
	0x72, 0x73, 0x6f, 0x6e, 0x61, 0x2e, 0x45, 0x6d, 0x70, 0x74, 0x79, 0x1a, 0x13, 0x2e, 0x70, 0x65,
	0x72, 0x73, 0x6f, 0x6e, 0x61, 0x2e, 0x42, 0x6f, 0x75, 0x6e, 0x64, 0x61, 0x72, 0x69, 0x65, 0x73,
	0x12, 0x30, 0x0a, 0x0b, 0x47, 0x65, 0x74, 0x44, 0x65, 0x63, 0x6f, 0x64, 0x69, 0x6e, 0x67, 0x12,
	0x0e, 0x2e, 0x70, 0x65, 0x72, 0x73, 0x6f, 0x6e, 0x61, 0x2e, 0x45, 0x6d, 0x70, 0x74, 0x79, 0x1a,
	0x11, 0x2e, 0x70, 0x65, 0x72, 0x73, 0x6f, 0x6e, 0x61, 0x2e, 0x44, 0x65, 0x63, 0x6f, 0x64, 0x69,
	0x6e, 0x67, 0x12, 0x36, 0x0a, 0x0a, 0x47, 0x65, 0x74, 0x53, 0x75, 0x6d, 0x6d, 0x61, 0x72, 0x79,
	0x12, 0x0e, 0x2e, 0x70, 0x65, 0x72, 0x73, 0x6f, 0x6e, 0x61, 0x2e, 0x45, 0x6d, 0x70, 0x74, 0x79,
	0x1a, 0x18, 0x2e, 0x70, 0x65, 0x72, 0x73, 0x6f, 0x6e, 0x61, 0x2e, 0x53, 0x75, 0x6d, 0x6d, 0x61,
	0x72, 0x79, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x31, 0x0a, 0x0f, 0x52, 0x65,
	0x73, 0x65, 0x74, 0x54, 0x6f, 0x42, 0x61, 0x73, 0x65, 0x6c, 0x69, 0x6e, 0x65, 0x12, 0x0e, 0x2e,
	0x70, 0x65, 0x72, 0x73, 0x6f, 0x6e, 0x61, 0x2e, 0x45, 0x6d, 0x70, 0x74, 0x79, 0x1a, 0x0e, 0x2e,
	0x70, 0x65, 0x72, 0x73, 0x6f, 0x6e, 0x61, 0x2e, 0x53, 0x74, 0x79, 0x6c, 0x65, 0x12, 0x33, 0x0a,
	0x0e, 0x45, 0x78, 0x70, 0x6f, 0x72, 0x74, 0x53, 0x6e, 0x61, 0x70, 0x73, 0x68, 0x6f, 0x74, 0x12,
	0x0e, 0x2e, 0x70, 0x65, 0x72, 0x73, 0x6f, 0x6e, 0x61, 0x2e, 0x45, 0x6d, 0x70, 0x74, 0x79, 0x1a,
	0x11, 0x2e, 0x70, 0x65, 0x72, 0x73, 0x6f, 0x6e, 0x61, 0x2e, 0x53, 0x6e, 0x61, 0x70, 0x73, 0x68,
	0x6f, 0x74, 0x12, 0x33, 0x0a, 0x0e, 0x49, 0x6d, 0x70, 0x6f, 0x72, 0x74, 0x53, 0x6e, 0x61, 0x70,
	0x73, 0x68, 0x6f, 0x74, 0x12, 0x11, 0x2e, 0x70, 0x65, 0x72, 0x73, 0x6f, 0x6e, 0x61, 0x2e, 0x53,
	0x6e, 0x61, 0x70, 0x73, 0x68, 0x6f, 0x74, 0x1a, 0x0e, 0x2e, 0x70, 0x65, 0x72, 0x73, 0x6f, 0x6e,
	0x61, 0x2e, 0x45, 0x6d, 0x70, 0x74, 0x79, 0x12, 0x45, 0x0a, 0x12, 0x43, 0x68, 0x65, 0x63, 0x6b,
	0x43, 0x6f, 0x6e, 0x74, 0x65, 0x6e, 0x74, 0x53, 0x61, 0x66, 0x65, 0x74, 0x79, 0x12, 0x16, 0x2e,
	0x70, 0x65, 0x72, 0x73, 0x6f, 0x6e, 0x61, 0x2e, 0x53, 0x61, 0x66, 0x65, 0x74, 0x79, 0x52, 0x65,
	0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x17, 0x2e, 0x70, 0x65, 0x72, 0x73, 0x6f, 0x6e, 0x61, 0x2e,
	0x53, 0x61, 0x66, 0x65, 0x74, 0x79, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x37,
	0x0a, 0x0c, 0x52, 0x65, 0x63, 0x65, 0x6e, 0x74, 0x54, 0x72, 0x61, 0x63, 0x65, 0x73, 0x12, 0x13,
	0x2e, 0x70, 0x65, 0x72, 0x73, 0x6f, 0x6e, 0x61, 0x2e, 0x54, 0x72, 0x61, 0x63, 0x65, 0x51, 0x75,
	0x65, 0x72, 0x79, 0x1a, 0x12, 0x2e, 0x70, 0x65, 0x72, 0x73, 0x6f, 0x6e, 0x61, 0x2e, 0x54, 0x72,
	0x61, 0x63, 0x65, 0x4c, 0x69, 0x73, 0x74, 0x12, 0x36, 0x0a, 0x0b, 0x44, 0x72, 0x69, 0x66, 0x74,
	0x41, 0x6c, 0x65, 0x72, 0x74, 0x73, 0x12, 0x13, 0x2e, 0x70, 0x65, 0x72, 0x73, 0x6f, 0x6e, 0x61,
	0x2e, 0x41, 0x6c, 0x65, 0x72, 0x74, 0x51, 0x75, 0x65, 0x72, 0x79, 0x1a, 0x12, 0x2e, 0x70, 0x65,
	0x72, 0x73, 0x6f, 0x6e, 0x61, 0x2e, 0x41, 0x6c, 0x65, 0x72, 0x74, 0x4c, 0x69, 0x73, 0x74, 0x12,
	0x41, 0x0a, 0x0c, 0x41, 0x70, 0x70, 0x6c, 0x79, 0x4c, 0x65, 0x6e, 0x73, 0x69, 0x6e, 0x67, 0x12,
	0x17, 0x2e, 0x70, 0x65, 0x72, 0x73, 0x6f, 0x6e, 0x61, 0x2e, 0x4c, 0x65, 0x6e, 0x73, 0x69, 0x6e,
	0x67, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x18, 0x2e, 0x70, 0x65, 0x72, 0x73, 0x6f,
	0x6e, 0x61, 0x2e, 0x4c, 0x65, 0x6e, 0x73, 0x69, 0x6e, 0x67, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e,
	0x73, 0x65, 0x42, 0x39, 0x5a, 0x37, 0x67, 0x69, 0x74, 0x68, 0x75, 0x62, 0x2e, 0x63, 0x6f, 0x6d,
	0x2f, 0x64, 0x61, 0x6e, 0x69, 0x65, 0x6c, 0x70, 0x61, 0x74, 0x72, 0x69, 0x63, 0x6b, 0x64, 0x70,
	0x2f, 0x70, 0x65, 0x72, 0x73, 0x6f, 0x6e, 0x61, 0x2d, 0x6d, 0x61, 0x74, 0x72, 0x69, 0x78, 0x2f,
	0x67, 0x65, 0x6e, 0x2f, 0x70, 0x65, 0x72, 0x73, 0x6f, 0x6e, 0x61, 0x70, 0x62, 0x62, 0x06, 0x70,
	0x72, 0x6f, 0x74, 0x6f, 0x33,
})

var (
	file_persona_proto_rawDescOnce sync.Once
	file_persona_proto_rawDescData []byte
)

func file_persona_proto_rawDescGZIP() []byte {
	file_persona_proto_rawDescOnce.Do(func() {
		file_persona_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_persona_proto_rawDesc), len(file_persona_proto_rawDesc)))
	})
	return file_persona_proto_rawDescData
}

var file_persona_proto_msgTypes = make([]protoimpl.MessageInfo, 22)
var file_persona_proto_goTypes = []any{
	(*Empty)(nil),              // 0: persona.Empty
	(*Traits)(nil),             // 1: persona.Traits
	(*State)(nil),              // 2: persona.State
	(*Decoding)(nil),           // 3: persona.Decoding
	(*Style)(nil),              // 4: persona.Style
	(*Boundaries)(nil),         // 5: persona.Boundaries
	(*AudienceContext)(nil),    // 6: persona.AudienceContext
	(*ChannelContext)(nil),     // 7: persona.ChannelContext
	(*EventContext)(nil),       // 8: persona.EventContext
	(*ApplyEventRequest)(nil),  // 9: persona.ApplyEventRequest
	(*ApplyEventResponse)(nil), // 10: persona.ApplyEventResponse
	(*SummaryResponse)(nil),    // 11: persona.SummaryResponse
	(*Snapshot)(nil),           // 12: persona.Snapshot
	(*SafetyRequest)(nil),      // 13: persona.SafetyRequest
	(*SafetyResponse)(nil),     // 14: persona.SafetyResponse
	(*TraceQuery)(nil),         // 15: persona.TraceQuery
	(*TraceList)(nil),          // 16: persona.TraceList
	(*AlertQuery)(nil),         // 17: persona.AlertQuery
	(*AlertList)(nil),          // 18: persona.AlertList
	(*LensingRequest)(nil),     // 19: persona.LensingRequest
	(*LensingResponse)(nil),    // 20: persona.LensingResponse
	nil,                        // 21: persona.LensingResponse.LensesEntry
}
var file_persona_proto_depIdxs = []int32{
	3,  // 0: persona.Style.decoding:type_name -> persona.Decoding
	6,  // 1: persona.ApplyEventRequest.audience:type_name -> persona.AudienceContext
	7,  // 2: persona.ApplyEventRequest.channel:type_name -> persona.ChannelContext
	8,  // 3: persona.ApplyEventRequest.context:type_name -> persona.EventContext
	2,  // 4: persona.ApplyEventResponse.state:type_name -> persona.State
	4,  // 5: persona.ApplyEventResponse.style:type_name -> persona.Style
	5,  // 6: persona.ApplyEventResponse.boundaries:type_name -> persona.Boundaries
	21, // 7: persona.LensingResponse.lenses:type_name -> persona.LensingResponse.LensesEntry
	9,  // 8: persona.PersonaService.ApplyEvent:input_type -> persona.ApplyEventRequest
	0,  // 9: persona.PersonaService.GetTraits:input_type -> persona.Empty
	0,  // 10: persona.PersonaService.GetState:input_type -> persona.Empty
	0,  // 11: persona.PersonaService.GetStyle:input_type -> persona.Empty
	0,  // 12: persona.PersonaService.GetBoundaries:input_type -> persona.Empty
	0,  // 13: persona.PersonaService.GetDecoding:input_type -> persona.Empty
	0,  // 14: persona.PersonaService.GetSummary:input_type -> persona.Empty
	0,  // 15: persona.PersonaService.ResetToBaseline:input_type -> persona.Empty
	0,  // 16: persona.PersonaService.ExportSnapshot:input_type -> persona.Empty
	12, // 17: persona.PersonaService.ImportSnapshot:input_type -> persona.Snapshot
	13, // 18: persona.PersonaService.CheckContentSafety:input_type -> persona.SafetyRequest
	15, // 19: persona.PersonaService.RecentTraces:input_type -> persona.TraceQuery
	17, // 20: persona.PersonaService.DriftAlerts:input_type -> persona.AlertQuery
	19, // 21: persona.PersonaService.ApplyLensing:input_type -> persona.LensingRequest
	10, // 22: persona.PersonaService.ApplyEvent:output_type -> persona.ApplyEventResponse
	1,  // 23: persona.PersonaService.GetTraits:output_type -> persona.Traits
	2,  // 24: persona.PersonaService.GetState:output_type -> persona.State
	4,  // 25: persona.PersonaService.GetStyle:output_type -> persona.Style
	5,  // 26: persona.PersonaService.GetBoundaries:output_type -> persona.Boundaries
	3,  // 27: persona.PersonaService.GetDecoding:output_type -> persona.Decoding
	11, // 28: persona.PersonaService.GetSummary:output_type -> persona.SummaryResponse
	4,  // 29: persona.PersonaService.ResetToBaseline:output_type -> persona.Style
	12, // 30: persona.PersonaService.ExportSnapshot:output_type -> persona.Snapshot
	0,  // 31: persona.PersonaService.ImportSnapshot:output_type -> persona.Empty
	14, // 32: persona.PersonaService.CheckContentSafety:output_type -> persona.SafetyResponse
	16, // 33: persona.PersonaService.RecentTraces:output_type -> persona.TraceList
	18, // 34: persona.PersonaService.DriftAlerts:output_type -> persona.AlertList
	20, // 35: persona.PersonaService.ApplyLensing:output_type -> persona.LensingResponse
	22, // [22:36] is the sub-list for method output_type
	8,  // [8:22] is the sub-list for method input_type
	8,  // [8:8] is the sub-list for extension type_name
	8,  // [8:8] is the sub-list for extension extendee
	0,  // [0:8] is the sub-list for field type_name
}

func init() { file_persona_proto_init() }
func file_persona_proto_init() {
	if File_persona_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_persona_proto_rawDesc), len(file_persona_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   22,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_persona_proto_goTypes,
		DependencyIndexes: file_persona_proto_depIdxs,
		MessageInfos:      file_persona_proto_msgTypes,
	}.Build()
	File_persona_proto = out.File
	file_persona_proto_goTypes = nil
	file_persona_proto_depIdxs = nil
}
