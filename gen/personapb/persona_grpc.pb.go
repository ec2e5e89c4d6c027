// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: persona.proto

package personapb

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	PersonaService_ApplyEvent_FullMethodName         = "/persona.PersonaService/ApplyEvent"
	PersonaService_GetTraits_FullMethodName          = "/persona.PersonaService/GetTraits"
	PersonaService_GetState_FullMethodName           = "/persona.PersonaService/GetState"
	PersonaService_GetStyle_FullMethodName           = "/persona.PersonaService/GetStyle"
	PersonaService_GetBoundaries_FullMethodName      = "/persona.PersonaService/GetBoundaries"
	PersonaService_GetDecoding_FullMethodName        = "/persona.PersonaService/GetDecoding"
	PersonaService_GetSummary_FullMethodName         = "/persona.PersonaService/GetSummary"
	PersonaService_ResetToBaseline_FullMethodName    = "/persona.PersonaService/ResetToBaseline"
	PersonaService_ExportSnapshot_FullMethodName     = "/persona.PersonaService/ExportSnapshot"
	PersonaService_ImportSnapshot_FullMethodName     = "/persona.PersonaService/ImportSnapshot"
	PersonaService_CheckContentSafety_FullMethodName = "/persona.PersonaService/CheckContentSafety"
	PersonaService_RecentTraces_FullMethodName       = "/persona.PersonaService/RecentTraces"
	PersonaService_DriftAlerts_FullMethodName        = "/persona.PersonaService/DriftAlerts"
	PersonaService_ApplyLensing_FullMethodName       = "/persona.PersonaService/ApplyLensing"
)

// PersonaServiceClient is the client API for PersonaService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// PersonaService exposes the personality matrix: read the current
// triad, push events through the pipeline, manage snapshots, and query
// observability.
type PersonaServiceClient interface {
	ApplyEvent(ctx context.Context, in *ApplyEventRequest, opts ...grpc.CallOption) (*ApplyEventResponse, error)
	GetTraits(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Traits, error)
	GetState(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*State, error)
	GetStyle(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Style, error)
	GetBoundaries(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Boundaries, error)
	GetDecoding(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Decoding, error)
	GetSummary(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*SummaryResponse, error)
	ResetToBaseline(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Style, error)
	ExportSnapshot(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Snapshot, error)
	ImportSnapshot(ctx context.Context, in *Snapshot, opts ...grpc.CallOption) (*Empty, error)
	CheckContentSafety(ctx context.Context, in *SafetyRequest, opts ...grpc.CallOption) (*SafetyResponse, error)
	RecentTraces(ctx context.Context, in *TraceQuery, opts ...grpc.CallOption) (*TraceList, error)
	DriftAlerts(ctx context.Context, in *AlertQuery, opts ...grpc.CallOption) (*AlertList, error)
	ApplyLensing(ctx context.Context, in *LensingRequest, opts ...grpc.CallOption) (*LensingResponse, error)
}

type personaServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewPersonaServiceClient(cc grpc.ClientConnInterface) PersonaServiceClient {
	return &personaServiceClient{cc}
}

func (c *personaServiceClient) ApplyEvent(ctx context.Context, in *ApplyEventRequest, opts ...grpc.CallOption) (*ApplyEventResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ApplyEventResponse)
	err := c.cc.Invoke(ctx, PersonaService_ApplyEvent_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *personaServiceClient) GetTraits(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Traits, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Traits)
	err := c.cc.Invoke(ctx, PersonaService_GetTraits_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *personaServiceClient) GetState(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*State, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(State)
	err := c.cc.Invoke(ctx, PersonaService_GetState_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *personaServiceClient) GetStyle(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Style, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Style)
	err := c.cc.Invoke(ctx, PersonaService_GetStyle_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *personaServiceClient) GetBoundaries(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Boundaries, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Boundaries)
	err := c.cc.Invoke(ctx, PersonaService_GetBoundaries_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *personaServiceClient) GetDecoding(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Decoding, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Decoding)
	err := c.cc.Invoke(ctx, PersonaService_GetDecoding_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *personaServiceClient) GetSummary(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*SummaryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SummaryResponse)
	err := c.cc.Invoke(ctx, PersonaService_GetSummary_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *personaServiceClient) ResetToBaseline(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Style, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Style)
	err := c.cc.Invoke(ctx, PersonaService_ResetToBaseline_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *personaServiceClient) ExportSnapshot(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Snapshot, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Snapshot)
	err := c.cc.Invoke(ctx, PersonaService_ExportSnapshot_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *personaServiceClient) ImportSnapshot(ctx context.Context, in *Snapshot, opts ...grpc.CallOption) (*Empty, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Empty)
	err := c.cc.Invoke(ctx, PersonaService_ImportSnapshot_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *personaServiceClient) CheckContentSafety(ctx context.Context, in *SafetyRequest, opts ...grpc.CallOption) (*SafetyResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SafetyResponse)
	err := c.cc.Invoke(ctx, PersonaService_CheckContentSafety_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *personaServiceClient) RecentTraces(ctx context.Context, in *TraceQuery, opts ...grpc.CallOption) (*TraceList, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(TraceList)
	err := c.cc.Invoke(ctx, PersonaService_RecentTraces_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *personaServiceClient) DriftAlerts(ctx context.Context, in *AlertQuery, opts ...grpc.CallOption) (*AlertList, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AlertList)
	err := c.cc.Invoke(ctx, PersonaService_DriftAlerts_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *personaServiceClient) ApplyLensing(ctx context.Context, in *LensingRequest, opts ...grpc.CallOption) (*LensingResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(LensingResponse)
	err := c.cc.Invoke(ctx, PersonaService_ApplyLensing_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PersonaServiceServer is the server API for PersonaService service.
// All implementations must embed UnimplementedPersonaServiceServer
// for forward compatibility.
//
// PersonaService exposes the personality matrix: read the current
// triad, push events through the pipeline, manage snapshots, and query
// observability.
type PersonaServiceServer interface {
	ApplyEvent(context.Context, *ApplyEventRequest) (*ApplyEventResponse, error)
	GetTraits(context.Context, *Empty) (*Traits, error)
	GetState(context.Context, *Empty) (*State, error)
	GetStyle(context.Context, *Empty) (*Style, error)
	GetBoundaries(context.Context, *Empty) (*Boundaries, error)
	GetDecoding(context.Context, *Empty) (*Decoding, error)
	GetSummary(context.Context, *Empty) (*SummaryResponse, error)
	ResetToBaseline(context.Context, *Empty) (*Style, error)
	ExportSnapshot(context.Context, *Empty) (*Snapshot, error)
	ImportSnapshot(context.Context, *Snapshot) (*Empty, error)
	CheckContentSafety(context.Context, *SafetyRequest) (*SafetyResponse, error)
	RecentTraces(context.Context, *TraceQuery) (*TraceList, error)
	DriftAlerts(context.Context, *AlertQuery) (*AlertList, error)
	ApplyLensing(context.Context, *LensingRequest) (*LensingResponse, error)
	mustEmbedUnimplementedPersonaServiceServer()
}

// UnimplementedPersonaServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedPersonaServiceServer struct{}

func (UnimplementedPersonaServiceServer) ApplyEvent(context.Context, *ApplyEventRequest) (*ApplyEventResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ApplyEvent not implemented")
}
func (UnimplementedPersonaServiceServer) GetTraits(context.Context, *Empty) (*Traits, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetTraits not implemented")
}
func (UnimplementedPersonaServiceServer) GetState(context.Context, *Empty) (*State, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetState not implemented")
}
func (UnimplementedPersonaServiceServer) GetStyle(context.Context, *Empty) (*Style, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetStyle not implemented")
}
func (UnimplementedPersonaServiceServer) GetBoundaries(context.Context, *Empty) (*Boundaries, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetBoundaries not implemented")
}
func (UnimplementedPersonaServiceServer) GetDecoding(context.Context, *Empty) (*Decoding, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetDecoding not implemented")
}
func (UnimplementedPersonaServiceServer) GetSummary(context.Context, *Empty) (*SummaryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetSummary not implemented")
}
func (UnimplementedPersonaServiceServer) ResetToBaseline(context.Context, *Empty) (*Style, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ResetToBaseline not implemented")
}
func (UnimplementedPersonaServiceServer) ExportSnapshot(context.Context, *Empty) (*Snapshot, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportSnapshot not implemented")
}
func (UnimplementedPersonaServiceServer) ImportSnapshot(context.Context, *Snapshot) (*Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ImportSnapshot not implemented")
}
func (UnimplementedPersonaServiceServer) CheckContentSafety(context.Context, *SafetyRequest) (*SafetyResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CheckContentSafety not implemented")
}
func (UnimplementedPersonaServiceServer) RecentTraces(context.Context, *TraceQuery) (*TraceList, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RecentTraces not implemented")
}
func (UnimplementedPersonaServiceServer) DriftAlerts(context.Context, *AlertQuery) (*AlertList, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DriftAlerts not implemented")
}
func (UnimplementedPersonaServiceServer) ApplyLensing(context.Context, *LensingRequest) (*LensingResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ApplyLensing not implemented")
}
func (UnimplementedPersonaServiceServer) mustEmbedUnimplementedPersonaServiceServer() {}
func (UnimplementedPersonaServiceServer) testEmbeddedByValue()                        {}

// UnsafePersonaServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to PersonaServiceServer will
// result in compilation errors.
type UnsafePersonaServiceServer interface {
	mustEmbedUnimplementedPersonaServiceServer()
}

func RegisterPersonaServiceServer(s grpc.ServiceRegistrar, srv PersonaServiceServer) {
	// If the following call pancis, it indicates UnimplementedPersonaServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&PersonaService_ServiceDesc, srv)
}

func _PersonaService_ApplyEvent_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ApplyEventRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PersonaServiceServer).ApplyEvent(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PersonaService_ApplyEvent_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PersonaServiceServer).ApplyEvent(ctx, req.(*ApplyEventRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PersonaService_GetTraits_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PersonaServiceServer).GetTraits(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PersonaService_GetTraits_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PersonaServiceServer).GetTraits(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _PersonaService_GetState_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PersonaServiceServer).GetState(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PersonaService_GetState_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PersonaServiceServer).GetState(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _PersonaService_GetStyle_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PersonaServiceServer).GetStyle(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PersonaService_GetStyle_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PersonaServiceServer).GetStyle(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _PersonaService_GetBoundaries_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PersonaServiceServer).GetBoundaries(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PersonaService_GetBoundaries_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PersonaServiceServer).GetBoundaries(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _PersonaService_GetDecoding_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PersonaServiceServer).GetDecoding(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PersonaService_GetDecoding_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PersonaServiceServer).GetDecoding(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _PersonaService_GetSummary_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PersonaServiceServer).GetSummary(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PersonaService_GetSummary_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PersonaServiceServer).GetSummary(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _PersonaService_ResetToBaseline_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PersonaServiceServer).ResetToBaseline(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PersonaService_ResetToBaseline_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PersonaServiceServer).ResetToBaseline(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _PersonaService_ExportSnapshot_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PersonaServiceServer).ExportSnapshot(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PersonaService_ExportSnapshot_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PersonaServiceServer).ExportSnapshot(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _PersonaService_ImportSnapshot_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Snapshot)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PersonaServiceServer).ImportSnapshot(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PersonaService_ImportSnapshot_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PersonaServiceServer).ImportSnapshot(ctx, req.(*Snapshot))
	}
	return interceptor(ctx, in, info, handler)
}

func _PersonaService_CheckContentSafety_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SafetyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PersonaServiceServer).CheckContentSafety(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PersonaService_CheckContentSafety_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PersonaServiceServer).CheckContentSafety(ctx, req.(*SafetyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PersonaService_RecentTraces_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TraceQuery)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PersonaServiceServer).RecentTraces(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PersonaService_RecentTraces_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PersonaServiceServer).RecentTraces(ctx, req.(*TraceQuery))
	}
	return interceptor(ctx, in, info, handler)
}

func _PersonaService_DriftAlerts_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AlertQuery)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PersonaServiceServer).DriftAlerts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PersonaService_DriftAlerts_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PersonaServiceServer).DriftAlerts(ctx, req.(*AlertQuery))
	}
	return interceptor(ctx, in, info, handler)
}

func _PersonaService_ApplyLensing_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(LensingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PersonaServiceServer).ApplyLensing(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PersonaService_ApplyLensing_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PersonaServiceServer).ApplyLensing(ctx, req.(*LensingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// PersonaService_ServiceDesc is the grpc.ServiceDesc for PersonaService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var PersonaService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "persona.PersonaService",
	HandlerType: (*PersonaServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ApplyEvent",
			Handler:    _PersonaService_ApplyEvent_Handler,
		},
		{
			MethodName: "GetTraits",
			Handler:    _PersonaService_GetTraits_Handler,
		},
		{
			MethodName: "GetState",
			Handler:    _PersonaService_GetState_Handler,
		},
		{
			MethodName: "GetStyle",
			Handler:    _PersonaService_GetStyle_Handler,
		},
		{
			MethodName: "GetBoundaries",
			Handler:    _PersonaService_GetBoundaries_Handler,
		},
		{
			MethodName: "GetDecoding",
			Handler:    _PersonaService_GetDecoding_Handler,
		},
		{
			MethodName: "GetSummary",
			Handler:    _PersonaService_GetSummary_Handler,
		},
		{
			MethodName: "ResetToBaseline",
			Handler:    _PersonaService_ResetToBaseline_Handler,
		},
		{
			MethodName: "ExportSnapshot",
			Handler:    _PersonaService_ExportSnapshot_Handler,
		},
		{
			MethodName: "ImportSnapshot",
			Handler:    _PersonaService_ImportSnapshot_Handler,
		},
		{
			MethodName: "CheckContentSafety",
			Handler:    _PersonaService_CheckContentSafety_Handler,
		},
		{
			MethodName: "RecentTraces",
			Handler:    _PersonaService_RecentTraces_Handler,
		},
		{
			MethodName: "DriftAlerts",
			Handler:    _PersonaService_DriftAlerts_Handler,
		},
		{
			MethodName: "ApplyLensing",
			Handler:    _PersonaService_ApplyLensing_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "persona.proto",
}
